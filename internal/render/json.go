package render

import (
	"encoding/json"

	"camscrape/lib/scrapers/cambridge"
)

// pronunciationJSON is the wire shape of the pronunciation block:
// audio links are flattened next to the transcriptions with an "mp3"
// suffix on the region tag. Absent regions are omitted entirely.
type pronunciationJSON struct {
	AmE    string `json:"AmE,omitempty"`
	BrE    string `json:"BrE,omitempty"`
	AmEmp3 string `json:"AmEmp3,omitempty"`
	BrEmp3 string `json:"BrEmp3,omitempty"`
}

type entryJSON struct {
	Word          string            `json:"word"`
	Lang          string            `json:"lang,omitempty"`
	URL           string            `json:"url,omitempty"`
	Pronunciation pronunciationJSON `json:"pronunciation"`
	Definitions   []string          `json:"definitions"`
	Image         string            `json:"image,omitempty"`
	Thumb         string            `json:"thumb,omitempty"`
}

func toJSON(e cambridge.Entry) entryJSON {
	out := entryJSON{
		Word: e.Word,
		Lang: string(e.Language),
		URL:  e.URL,
		Pronunciation: pronunciationJSON{
			AmE:    e.Pronunciation[cambridge.RegionAmE],
			BrE:    e.Pronunciation[cambridge.RegionBrE],
			AmEmp3: e.Audio[cambridge.RegionAmE],
			BrEmp3: e.Audio[cambridge.RegionBrE],
		},
		Definitions: e.Definitions,
		Image:       e.Image,
		Thumb:       e.Thumb,
	}
	if out.Definitions == nil {
		out.Definitions = []string{}
	}
	return out
}

func fromJSON(in entryJSON) cambridge.Entry {
	e := cambridge.Entry{
		Word:        in.Word,
		Language:    cambridge.Language(in.Lang),
		URL:         in.URL,
		Definitions: in.Definitions,
		Image:       in.Image,
		Thumb:       in.Thumb,
	}
	if e.Definitions == nil {
		e.Definitions = []string{}
	}
	setRegion := func(m *map[cambridge.Region]string, region cambridge.Region, value string) {
		if value == "" {
			return
		}
		if *m == nil {
			*m = map[cambridge.Region]string{}
		}
		(*m)[region] = value
	}
	setRegion(&e.Pronunciation, cambridge.RegionAmE, in.Pronunciation.AmE)
	setRegion(&e.Pronunciation, cambridge.RegionBrE, in.Pronunciation.BrE)
	setRegion(&e.Audio, cambridge.RegionAmE, in.Pronunciation.AmEmp3)
	setRegion(&e.Audio, cambridge.RegionBrE, in.Pronunciation.BrEmp3)
	return e
}

// JSON serializes an Entry to its wire shape, compact unless pretty is
// set.
func JSON(e cambridge.Entry, pretty bool) ([]byte, error) {
	out := toJSON(e)
	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// ParseJSON is the inverse of JSON: parsing serialized output yields an
// Entry equal to the one that produced it.
func ParseJSON(data []byte) (cambridge.Entry, error) {
	var in entryJSON
	err := json.Unmarshal(data, &in)
	if err != nil {
		return cambridge.Entry{}, err
	}
	return fromJSON(in), nil
}
