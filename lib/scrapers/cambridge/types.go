package cambridge

// Region tags a pronunciation or audio variant.
type Region string

const (
	RegionAmE Region = "AmE"
	RegionBrE Region = "BrE"
)

// Entry is one scraped dictionary entry. Region maps only hold keys for
// regions actually present on the page, and empty Image/Thumb mean the
// page had no illustration. An Entry is built once per lookup and never
// mutated afterwards.
type Entry struct {
	Word          string
	Language      Language
	URL           string
	Pronunciation map[Region]string
	Audio         map[Region]string
	Definitions   []string
	Image         string
	Thumb         string
}
