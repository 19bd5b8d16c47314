package shell

// Page selects which tool the central region shows.
type Page int

const (
	PageAdb Page = iota
	PageFrida
	PageInjection
	pageCount
)

var pageNames = [...]string{
	PageAdb:       "ADB",
	PageFrida:     "Frida",
	PageInjection: "Inject",
}

// Pages lists every page in navigation order.
func Pages() []Page {
	return []Page{PageAdb, PageFrida, PageInjection}
}

func (p Page) Valid() bool {
	return p >= 0 && p < pageCount
}

func (p Page) String() string {
	if !p.Valid() {
		return "Unknown"
	}
	return pageNames[p]
}
