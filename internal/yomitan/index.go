package yomitan

import (
	"fmt"
	"time"

	"github.com/heartmarshall/yomigen/internal/domain"
)

// Publisher identifies who publishes the generated dictionaries and where
// they are hosted. An empty BaseURL disables the self-update links.
type Publisher struct {
	Author   string
	Homepage string
	BaseURL  string
}

// Index is the dictionary's index.json.
//
// https://github.com/yomidevs/yomitan/blob/master/ext/data/schemas/dictionary-index-schema.json
type Index struct {
	Title          string `json:"title"`
	Format         int    `json:"format"`
	Revision       string `json:"revision"`
	Sequenced      bool   `json:"sequenced"`
	Author         string `json:"author"`
	URL            string `json:"url"`
	Description    string `json:"description"`
	Attribution    string `json:"attribution"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	IsUpdatable    bool   `json:"isUpdatable"`
	IndexURL       string `json:"indexUrl,omitempty"`
	DownloadURL    string `json:"downloadUrl,omitempty"`
}

// NewIndex builds the index for one dictionary. The viewer compares
// revisions to decide whether an update is available, so the revision is
// the dot-separated build date.
//
// indexUrl points at a standalone copy of this index in the download
// repository; downloadUrl at the archive itself.
func NewIndex(name string, source, target domain.Lang, pub Publisher, now time.Time) Index {
	idx := Index{
		Title:          name,
		Format:         3,
		Revision:       now.UTC().Format("2006.01.02"),
		Sequenced:      true,
		Author:         pub.Author,
		URL:            pub.Homepage,
		Description:    "Dictionaries for various language pairs generated from Wiktionary data, via Kaikki and yomigen.",
		Attribution:    "https://kaikki.org/",
		SourceLanguage: string(source),
		TargetLanguage: string(target),
	}

	if pub.BaseURL != "" {
		idx.IsUpdatable = true
		idx.IndexURL = fmt.Sprintf("%s/index/%s-index?download=true", pub.BaseURL, name)
		idx.DownloadURL = fmt.Sprintf("%s/dict/%s/%s/%s.zip?download=true", pub.BaseURL, target, source, name)
	}

	return idx
}
