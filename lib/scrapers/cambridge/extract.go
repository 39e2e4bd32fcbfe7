package cambridge

import (
	"bytes"
	"fmt"
	"strings"

	"camscrape/lib/htmlutil"
	"camscrape/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Structural landmarks of the entry page. The extractor is driven
// entirely by these selectors; if the site layout changes, this block
// is what needs updating.
const (
	selRootEnglish   = "div.page"
	selRootBilingual = "div.di-body"
	selEntryElement  = "div.entry-body__el"
	selPosHeader     = "div.pos-header"
	selPronBlock     = "span.dpron-i"
	selPronRegion    = "span.region"
	selPronText      = "span.pron"
	selPronAudio     = `source[type="audio/mpeg"]`
	selPosGram       = "div.posgram"
	selSense         = "div.pos-body"
	selSenseBody     = "div.sense-body, div.runon-body.pad-indent"
	selGuideword     = "span.guideword"
	selRunonPos      = "span.pos"
	selRunonGram     = "span.gram"
	selRunonTitle    = "h3.runon-title"
	selPhraseHead    = "span.phrase-head"
	selPhraseBody    = "div.phrase-body.pad-indent"
	selDefInfo       = "span.def-info"
	selLabel         = "span.lab"
	selDefinition    = "div.def"
	selTranslation   = "span.trans"
	selExample       = "div.examp.dexamp"
	selImage         = "img.lightboxLink"

	classDefBlock    = "def-block"
	classPhraseBlock = "phrase-block"
	classRunonBody   = "runon-body"
	classRunon       = "runon"
)

// Extract parses raw entry page markup into an Entry. Relative media
// links are resolved against the production site.
func Extract(markup []byte, word string, lang Language) (Entry, error) {
	return extract(markup, word, lang, DefaultBaseURL)
}

func extract(markup []byte, word string, lang Language, base string) (Entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return Entry{}, fmt.Errorf("parse markup: %w", err)
	}

	rootSel := selRootBilingual
	if lang == LangEnglish {
		rootSel = selRootEnglish
	}
	root := doc.Find(rootSel).First()
	if root.Length() == 0 {
		return Entry{}, fmt.Errorf("%q: %w", word, ErrNoEntryBody)
	}

	entry := Entry{
		Word:        word,
		Language:    lang,
		Definitions: []string{},
	}

	// guidewords in document order, consumed as a fallback when a
	// sense block has no enclosing guideword of its own
	var guidewords []string
	root.Find(selGuideword).Each(func(_ int, sel *goquery.Selection) {
		text := textutil.NormalizeSpace(htmlutil.JoinedText(sel))
		if text != "" {
			guidewords = append(guidewords, text)
		}
	})
	guidewordIndex := 0
	nextGuideword := func() string {
		if guidewordIndex < len(guidewords) {
			value := guidewords[guidewordIndex]
			guidewordIndex++
			return value
		}
		return ""
	}

	headerFound := false
	root.Find(selEntryElement).Each(func(_ int, el *goquery.Selection) {
		if !headerFound {
			header := el.Find(selPosHeader).First()
			if header.Length() > 0 {
				extractPronunciation(&entry, header, base)
				headerFound = true
			}
		}

		posGram := textutil.NormalizeSpace(htmlutil.JoinedText(el.Find(selPosGram).First()))

		el.Find(selSense).Each(func(_ int, sense *goquery.Selection) {
			runonTitle := ""
			if firstClass(sense) == classRunon {
				pos := sense.Find(selRunonPos).First()
				if pos.Length() > 0 {
					gram := sense.Find(selRunonGram).First()
					posGram = textutil.NormalizeSpace(
						htmlutil.JoinedText(pos) + " " + htmlutil.JoinedText(gram),
					)
				}
				runonTitle = textutil.NormalizeSpace(htmlutil.JoinedText(sense.Find(selRunonTitle).First()))
			}

			guideword := ""
			guidewordTags := sense.Find(selGuideword)
			if guidewordTags.Length() == 1 {
				guideword = textutil.NormalizeSpace(htmlutil.JoinedText(guidewordTags))
			}

			senseBody := sense.Find(selSenseBody).First()
			if senseBody.Length() > 0 {
				entry.Definitions = append(entry.Definitions, extractDefinitions(
					senseBody, posGram, runonTitle, guideword, nextGuideword,
				)...)
			}

			image := sense.Find(selImage).First()
			if image.Length() > 0 {
				if src, ok := image.Attr("data-image"); ok && src != "" {
					entry.Image = joinBase(base, src)
				}
				if src, ok := image.Attr("src"); ok && src != "" {
					entry.Thumb = joinBase(base, src)
				}
			}
		})
	})

	return entry, nil
}

// extractPronunciation fills the region maps from the first pos-header
// on the page. The first block per region wins when the site repeats a
// region.
func extractPronunciation(entry *Entry, header *goquery.Selection, base string) {
	header.Find(selPronBlock).Each(func(_ int, block *goquery.Selection) {
		region := RegionBrE
		if strings.TrimSpace(block.Find(selPronRegion).First().Text()) == "us" {
			region = RegionAmE
		}

		pron := textutil.NormalizeSpace(htmlutil.JoinedText(block.Find(selPronText).First()))
		if pron != "" {
			if entry.Pronunciation == nil {
				entry.Pronunciation = map[Region]string{}
			}
			if _, taken := entry.Pronunciation[region]; !taken {
				entry.Pronunciation[region] = pron
			}
		}

		src, ok := block.Find(selPronAudio).First().Attr("src")
		if ok && src != "" {
			if entry.Audio == nil {
				entry.Audio = map[Region]string{}
			}
			if _, taken := entry.Audio[region]; !taken {
				entry.Audio[region] = joinBase(base, src)
			}
		}
	})
}

// extractDefinitions walks the direct children of a sense body in
// document order. def-block and runon-body children emit one definition
// each, phrase-block children recurse one level with the phrase head as
// an extra tag, anything else is skipped. Order is preserved exactly as
// the source lists it.
func extractDefinitions(senseBody *goquery.Selection, posGram, runonTitle, guideword string, nextGuideword func() string) []string {
	var items []string

	var extractSense func(block *goquery.Selection, phrase string)
	extractSense = func(block *goquery.Selection, phrase string) {
		switch firstClass(block) {
		case classDefBlock, classRunonBody:
		case classPhraseBlock:
			phraseHead := textutil.NormalizeSpace(htmlutil.JoinedText(block.Find(selPhraseHead).First()))
			block.Find(selPhraseBody).First().Children().Each(func(_ int, child *goquery.Selection) {
				extractSense(child, phraseHead)
			})
			return
		default:
			return
		}

		defInfo := textutil.NormalizeSpace(strings.ReplaceAll(
			htmlutil.JoinedText(block.Find(selDefInfo).First()), "›", "",
		))

		var labels []string
		collectLabels := func(_ int, label *goquery.Selection) {
			text := strings.TrimSpace(label.Text())
			if text != "" {
				labels = append(labels, text)
			}
		}
		block.Find(selLabel).Each(collectLabels)
		if len(labels) == 0 {
			block.ParentsFiltered("div.pr").First().Find(selLabel).Each(collectLabels)
		}

		guidewordForBlock := guideword
		dsense := block.Parents().FilterFunction(func(_ int, parent *goquery.Selection) bool {
			cls, _ := parent.Attr("class")
			return parent.Is("div") && strings.Contains(cls, "dsense")
		}).First()
		if dsense.Length() > 0 {
			text := textutil.NormalizeSpace(htmlutil.JoinedText(dsense.Find(selGuideword).First()))
			if text != "" {
				guidewordForBlock = text
			}
		}
		if guidewordForBlock == "" && nextGuideword != nil {
			guidewordForBlock = nextGuideword()
		}

		tags := []string{posGram, runonTitle, phrase, guidewordForBlock, defInfo}
		tags = append(tags, labels...)
		var tagParts []string
		for _, tag := range tags {
			if tag != "" {
				tagParts = append(tagParts, fmt.Sprintf("[%s]", tag))
			}
		}
		tagText := strings.Join(tagParts, " ")

		var mainParts []string
		definition := textutil.NormalizeSpace(htmlutil.JoinedText(block.Find(selDefinition).First()))
		if definition != "" {
			mainParts = append(mainParts, definition)
		}
		translation := textutil.NormalizeSpace(htmlutil.JoinedText(block.Find(selTranslation).First()))
		if translation != "" {
			mainParts = append(mainParts, translation)
		}

		var textBlocks []string
		if len(mainParts) > 0 {
			textBlocks = append(textBlocks, strings.Join(mainParts, " "))
		}
		block.Find(selExample).Each(func(_ int, example *goquery.Selection) {
			text := textutil.NormalizeSpace(htmlutil.JoinedText(example))
			if text != "" {
				textBlocks = append(textBlocks, "- "+text)
			}
		})
		definitionText := strings.TrimSpace(strings.Join(textBlocks, "\n"))

		var full []string
		for _, part := range []string{tagText, definitionText} {
			if part != "" {
				full = append(full, part)
			}
		}
		items = append(items, strings.Join(full, " "))
	}

	senseBody.Children().Each(func(_ int, block *goquery.Selection) {
		extractSense(block, "")
	})

	return items
}

func firstClass(sel *goquery.Selection) string {
	cls, _ := sel.Attr("class")
	fields := strings.Fields(cls)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func joinBase(base, link string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(link, "/")
}
