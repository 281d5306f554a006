// Package services implements the driving ports: recommendation,
// partitioning and settings. Each service is built from driven ports only,
// so adapters can be swapped for the in-memory fakes in tests.
package services
