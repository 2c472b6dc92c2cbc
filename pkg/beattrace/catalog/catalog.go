// Package catalog holds the static reference table of commercial tracks
// used by the last-resort local match source. The table is loaded once at
// process start and never mutated, so it is safe to share across
// concurrent analyses without locking.
package catalog

// Genre labels present in the catalog.
const (
	GenreHipHop    = "hip-hop"
	GenreAfrobeats = "afrobeats"
	GenrePop       = "pop"
	GenreRnB       = "r&b"
	GenreLatin     = "latin"
)

// AllGenres is indexed by the fingerprint-derived pseudo-genre selector.
// Order is load-bearing: selection is modulo the slice length.
var AllGenres = []string{GenreHipHop, GenreAfrobeats, GenrePop, GenreRnB, GenreLatin}

// Entry is one reference track. Platform ids are optional; when present
// they allow direct streaming links instead of search links.
type Entry struct {
	ID          string
	Title       string
	Artist      string
	Album       string
	ReleaseYear string
	Genre       string
	BPM         int
	Key         string
	Producers   []string
	SpotifyID   string
	AppleID     string
	YouTubeID   string
}

// Catalog is an immutable, ordered collection of entries.
type Catalog struct {
	entries []Entry
}

func NewCatalog(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at position i in catalog order.
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// ByGenres returns the entries whose genre is in the given set,
// preserving catalog order.
func (c *Catalog) ByGenres(genres []string) []Entry {
	set := make(map[string]bool, len(genres))
	for _, g := range genres {
		set[g] = true
	}
	var out []Entry
	for _, e := range c.entries {
		if set[e.Genre] {
			out = append(out, e)
		}
	}
	return out
}

// Seed returns the built-in reference tracks in canonical order.
func Seed() []Entry {
	return []Entry{
		{
			ID: "hiphop-1", Title: "Money Trees", Artist: "Kendrick Lamar ft. Jay Rock",
			Album: "good kid, m.A.A.d city", ReleaseYear: "2012", Genre: GenreHipHop,
			BPM: 93, Key: "C# minor", Producers: []string{"DJ Dahi"},
		},
		{
			ID: "hiphop-2", Title: "Sicko Mode", Artist: "Travis Scott ft. Drake",
			Album: "Astroworld", ReleaseYear: "2018", Genre: GenreHipHop,
			BPM: 155, Key: "F minor", Producers: []string{"Hit-Boy", "OZ", "Tay Keith"},
			YouTubeID: "6ONRf7h3Mdk",
		},
		{
			ID: "hiphop-3", Title: "Humble", Artist: "Kendrick Lamar",
			Album: "DAMN.", ReleaseYear: "2017", Genre: GenreHipHop,
			BPM: 150, Key: "F# minor", Producers: []string{"Mike WiLL Made-It"},
			YouTubeID: "tvTRZJ-4EyI",
		},
		{
			ID: "hiphop-4", Title: "No Role Modelz", Artist: "J. Cole",
			Album: "2014 Forest Hills Drive", ReleaseYear: "2014", Genre: GenreHipHop,
			BPM: 100, Key: "G minor", Producers: []string{"J. Cole", "Phonix Beats"},
		},
		{
			ID: "afro-1", Title: "Last Last", Artist: "Burna Boy",
			Album: "Love, Damini", ReleaseYear: "2022", Genre: GenreAfrobeats,
			BPM: 106, Key: "A minor", Producers: []string{"Chopstix"},
		},
		{
			ID: "afro-2", Title: "Essence", Artist: "Wizkid ft. Tems",
			Album: "Made in Lagos", ReleaseYear: "2020", Genre: GenreAfrobeats,
			BPM: 107, Key: "C# minor", Producers: []string{"P2J", "Legendury Beatz"},
		},
		{
			ID: "afro-3", Title: "Peru", Artist: "Fireboy DML",
			Album: "Playboy", ReleaseYear: "2021", Genre: GenreAfrobeats,
			BPM: 109, Key: "G minor", Producers: []string{"Shizzi"},
		},
		{
			ID: "pop-1", Title: "Levitating", Artist: "Dua Lipa",
			Album: "Future Nostalgia", ReleaseYear: "2020", Genre: GenrePop,
			BPM: 103, Key: "B minor", Producers: []string{"Koz", "Stuart Price"},
			YouTubeID: "TUVcZfQe-Kw",
		},
		{
			ID: "pop-2", Title: "Blinding Lights", Artist: "The Weeknd",
			Album: "After Hours", ReleaseYear: "2020", Genre: GenrePop,
			BPM: 171, Key: "F minor", Producers: []string{"Max Martin", "Oscar Holter"},
			YouTubeID: "4NRXx6U8ABQ",
		},
		{
			ID: "rnb-1", Title: "Pick Up Your Feelings", Artist: "Jazmine Sullivan",
			Album: "Heaux Tales", ReleaseYear: "2021", Genre: GenreRnB,
			BPM: 80, Key: "C minor", Producers: []string{"DZL"},
		},
		{
			ID: "rnb-2", Title: "Lost One", Artist: "Jazmine Sullivan",
			Album: "Heaux Tales", ReleaseYear: "2020", Genre: GenreRnB,
			BPM: 65, Key: "G minor", Producers: []string{"Dave Watson"},
		},
		{
			ID: "latin-1", Title: "Tití Me Preguntó", Artist: "Bad Bunny",
			Album: "Un Verano Sin Ti", ReleaseYear: "2022", Genre: GenreLatin,
			BPM: 110, Key: "F major", Producers: []string{"MAG", "La Paciencia"},
		},
		{
			ID: "latin-2", Title: "Hawái", Artist: "Maluma",
			Album: "Papi Juancho", ReleaseYear: "2020", Genre: GenreLatin,
			BPM: 90, Key: "F minor", Producers: []string{"Bull Nene", "Rude Boyz"},
		},
	}
}
