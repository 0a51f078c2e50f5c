package scanners

// Line is one line of a text body. Content shares memory with the text it
// was scanned from; it never includes the line terminator.
type Line struct {
	Number  int
	Content string
}
