// Command yomigen builds Yomitan dictionaries from kaikki.org Wiktextract
// dumps: per-edition glossaries, cross-edition glossaries and IPA banks.
//
// Configuration comes from a YAML file (CONFIG_PATH or --config) plus
// environment overrides; see internal/config. Dumps, record caches and
// finished dictionaries live under the data directory.
//
// Exit codes: 0 = success, 1 = error.
package main

import "github.com/heartmarshall/yomigen/internal/cli"

func main() {
	cli.Execute()
}
