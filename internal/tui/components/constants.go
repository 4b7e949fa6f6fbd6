package components

const (
	ListWidth        = 40 // ListWidth is the fixed width of the label list box
	labelNameMaxCols = 30 // Display columns available for a label name
	bulletSelected   = "▸ "
	bulletIdle       = "  "
)
