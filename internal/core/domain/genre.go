package domain

// Genres is the recognised genre vocabulary.
//
// The partitioner only writes partitions for these labels, the
// recommendation engine only resolves these labels, and every driving
// adapter offers exactly this list. Labels are already in normalised form:
// lowercase, punctuation and stop-words removed.
var Genres = []string{
	"antiques collectibles",
	"architecture",
	"art",
	"bible",
	"biography autobiography",
	"body mind spirit",
	"business economics",
	"comics graphic novels",
	"computers",
	"cooking",
	"crafts hobbies",
	"design",
	"drama",
	"education",
	"family relationships",
	"fiction",
	"foreign language study",
	"games",
	"gardening",
	"health fitness",
	"history",
	"house home",
	"humor",
	"juvenile fiction",
	"juvenile nonfiction",
	"language arts disciplines",
	"law",
	"literary collections",
	"literary criticism",
	"mathematics",
	"medical",
	"music",
	"nature",
	"performing arts",
	"pets",
	"philosophy",
	"photography",
	"poetry",
	"political science",
	"psychology",
	"reference",
	"religion",
	"science",
	"self-help",
	"social science",
	"sports recreation",
	"study aids",
	"technology engineering",
	"transportation",
	"travel",
	"true crime",
	"young adult fiction",
}

var genreSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Genres))
	for _, g := range Genres {
		set[g] = struct{}{}
	}
	return set
}()

// IsKnownGenre reports whether label is part of the genre vocabulary.
func IsKnownGenre(label string) bool {
	_, ok := genreSet[label]
	return ok
}

// GenreInfo describes one genre and whether a partition exists for it.
type GenreInfo struct {
	// Name is the genre label.
	Name string

	// Available is true when the partition store holds data for the genre.
	Available bool

	// Reviews is the number of review rows in the partition.
	// Zero when unavailable or when the store cannot count cheaply.
	Reviews int
}
