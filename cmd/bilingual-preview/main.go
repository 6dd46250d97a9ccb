// Command bilingual-preview converts a bilingual JSON export into an HTML
// page for side-by-side review of source and target text.
package main

import (
	"os"

	"github.com/custodia-labs/bilingual-preview/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bilingual-preview/internal/adapters/driven/loader/jsonfile"
	"github.com/custodia-labs/bilingual-preview/internal/adapters/driven/page"
	"github.com/custodia-labs/bilingual-preview/internal/adapters/driven/render/htmlfile"
	"github.com/custodia-labs/bilingual-preview/internal/adapters/driving/cli"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
	"github.com/custodia-labs/bilingual-preview/internal/core/services"
	"github.com/custodia-labs/bilingual-preview/internal/normalisers/html"
)

func main() {
	cli.SetPreviewService(services.NewPreviewService(
		jsonfile.New(),
		page.NewBuilder(html.New()),
		htmlfile.New(),
	))
	cli.SetSettingsOpener(func(path string) driven.SettingsStore {
		return file.NewConfigStore(path)
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
