// Package htmlview renders the sample's pages. Values are interpolated
// verbatim: the page exists to show raw API responses, not to be safe
// against hostile input.
package htmlview

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/rso-sample-apps/rso-web/internal/constants"
)

const tableStyle = `
<style type="text/css">
.tg  {border-collapse:collapse;border-spacing:0;}
.tg td{border-color:black;border-style:solid;border-width:1px;font-family:Arial, sans-serif;font-size:14px;
overflow:hidden;padding:10px 5px;word-break:normal;}
.tg th{border-color:black;border-style:solid;border-width:1px;font-family:Arial, sans-serif;font-size:14px;
font-weight:normal;overflow:hidden;padding:10px 5px;word-break:normal;}
.tg .tg-0lax{text-align:left;vertical-align:top}
</style>`

const tableOpen = `
<table class="tg">
<thead>
<tr>
	<th class="tg-0lax">key</th>
	<th class="tg-0lax">value</th>
</tr>
</thead>

<tbody>`

const tableClose = `
</tbody>
</table>
`

// LoginPage links to the precomputed sign-in URL.
func LoginPage(signInURL string) string {
	return fmt.Sprintf("<h1>login</h1><a href=%q>Sign In --> %s</a>", signInURL, signInURL)
}

// RedirectPage scripts a browser-side redirect to the display page,
// carrying the handoff query string.
func RedirectPage(query string) string {
	return fmt.Sprintf(`<script>window.location.href = "%s?%s";</script>`,
		constants.PathShowData, query)
}

// Table renders a JSON object as a two-column key/value table, one row
// per top-level key in document order.
func Table(obj []byte) string {
	var sb strings.Builder
	sb.WriteString(tableStyle)
	sb.WriteString(tableOpen)
	_ = jsonparser.ObjectEach(obj, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		fmt.Fprintf(&sb, `
<tr>
	<td class="tg-0lax">%s</td>
	<td class="tg-0lax">%s<br></td>
</tr>`, key, value)
		return nil
	})
	sb.WriteString(tableClose)
	return sb.String()
}

// DataPage composes the display page: account data, champion rotation
// and, when present, the id_token claims.
func DataPage(accountJSON, rotationJSON, idTokenClaims []byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>account data queried using RSO Access Token:</h2><p>%s</p>",
		Table(accountJSON))
	fmt.Fprintf(&sb, " <h2>champion rotation data queried using RGAPI token</h2><p>%s</p>",
		Table(rotationJSON))
	if len(idTokenClaims) > 0 {
		fmt.Fprintf(&sb, " <h2>id_token claims (unverified)</h2><p>%s</p>",
			Table(idTokenClaims))
	}
	return sb.String()
}
