// Package text looks up player-facing strings by message key.
package text

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed default.po
var defaultCatalogue []byte

var catalogue = load(defaultCatalogue)

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get returns the translation for key formatted with vars. Unknown keys are
// returned unchanged.
func Get(key string, vars ...any) string {
	return catalogue.Get(key, vars...)
}
