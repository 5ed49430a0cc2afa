// Package banner renders the startup banner printed when the listener is up.
package banner

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

const Title = "Blue-Green Deployment App Running"

// Info is what the banner shows.
type Info struct {
	Environment string
	Version     string
	Port        int
	Hostname    string
}

// URLs lists the reachable endpoints, root first.
func (i Info) URLs() []string {
	base := fmt.Sprintf("http://localhost:%d", i.Port)
	return []string{base, base + "/health", base + "/status"}
}

// Write renders the banner to out.
func Write(out io.Writer, info Info) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(Title)
	tw.AppendRow(table.Row{"Entorno", info.Environment})
	tw.AppendRow(table.Row{"Versión", info.Version})
	tw.AppendRow(table.Row{"Puerto", info.Port})
	tw.AppendRow(table.Row{"Hostname", info.Hostname})
	tw.AppendSeparator()

	urls := info.URLs()
	tw.AppendRow(table.Row{"🌐", urls[0]})
	tw.AppendRow(table.Row{"🏥", urls[1]})
	tw.AppendRow(table.Row{"📊", urls[2]})
	tw.Render()
}
