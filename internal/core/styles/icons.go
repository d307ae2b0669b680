package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconBook   = "\U000F00BE" // nf-md-book_open_page_variant
	IconImage  = "\uf03e"     // nf-fa-image
	IconSearch = "\uf002"     // nf-fa-search
)
