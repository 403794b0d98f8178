package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
    ____  ____ _______ _  __
   / __ \/ __ ` + "`" + `/ ___/ ___/ |/_/
  / /_/ / /_/ (__  |__  )>  <
 / .___/\__,_/____/____/_/|_|
/_/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates passx
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("passx", version)()
	}
}
