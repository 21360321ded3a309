// Brandkit derives brand colour palettes from tenant logo images for the
// invoicing platform: dominant colours in, a WCAG AA readable three-colour
// palette out.
package main

import (
	"github.com/safenetcreations/my-invocies-sub000/internal/cli"
)

func main() {
	cli.Execute()
}
