package builder

import "strings"

// Banner is the pair of hero images shown at the top of a page.
type Banner struct {
	Desktop string
	Small   string // used below 720px when the small-screen override is enabled
}

// defaultBannerKey is used for every page without a dedicated banner.
const defaultBannerKey = "index"

// banners maps a lower-cased page name to its dedicated banner images.
var banners = map[string]Banner{
	"index": {
		Desktop: "http://2018.igem.org/wiki/images/c/c1/T--Rotterdam_HR--graffiti.jpeg",
		Small:   "http://2018.igem.org/wiki/images/0/0c/T--Rotterdam_HR--Graffiti-banner_small.jpeg",
	},
	"team": {
		Desktop: "http://2018.igem.org/wiki/images/e/ef/T--Rotterdam_HR--team-heads.jpg",
		Small:   "http://2018.igem.org/wiki/images/6/62/T--Rotterdam_HR--team_small.jpeg",
	},
	"human_practices": {
		Desktop: "http://2018.igem.org/wiki/images/3/3a/T--Rotterdam_HR--Human_practices-banner.jpeg",
		Small:   "http://2018.igem.org/wiki/images/1/1c/T--Rotterdam_HR--Human_practices-banner_small.jpeg",
	},
	"software": {
		Desktop: "http://2018.igem.org/wiki/images/c/cc/T--Rotterdam_HR--Software-banner.jpeg",
		Small:   "http://2018.igem.org/wiki/images/c/cd/T--Rotterdam_HR--Software-banner_small.jpeg",
	},
	"safety": {
		Desktop: "http://2018.igem.org/wiki/images/c/c9/T--Rotterdam_HR--Safety-banner.jpeg",
		Small:   "http://2018.igem.org/wiki/images/0/04/T--Rotterdam_HR--Safety-banner_small.jpeg",
	},
	"notebook": {
		Desktop: "http://2018.igem.org/wiki/images/3/3e/T--Rotterdam_HR--Notebook-banner.jpeg",
		Small:   "http://2018.igem.org/wiki/images/7/77/T--Rotterdam_HR--Notebook-banner_small.jpeg",
	},
	"experiments": {
		Desktop: "http://2018.igem.org/wiki/images/a/a3/T--Rotterdam_HR--Experiments-banner.jpeg",
		Small:   "http://2018.igem.org/wiki/images/0/00/T--Rotterdam_HR--Experiments-banner_small.jpeg",
	},
	"hardware": {
		Desktop: "http://2018.igem.org/wiki/images/1/11/T--Rotterdam_HR--Hardware-banner.jpeg",
		Small:   "http://2018.igem.org/wiki/images/3/36/T--Rotterdam_HR--Hardware-banner_small.jpeg",
	},
}

// LookupBanner returns the banner for a page name, case-insensitively,
// falling back to the home page banner. It never returns empty URLs.
func LookupBanner(name string) Banner {
	if b, ok := banners[strings.ToLower(name)]; ok {
		return b
	}
	return banners[defaultBannerKey]
}

// ResolveBanner returns the desktop banner image URL for a page name.
func ResolveBanner(name string) string { return LookupBanner(name).Desktop }

// ResolveSmallBanner returns the small-screen banner image URL for a page name.
func ResolveSmallBanner(name string) string { return LookupBanner(name).Small }
