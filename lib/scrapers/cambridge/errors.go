package cambridge

import "fmt"

var (
	ErrEmptyWord       = fmt.Errorf("word must not be empty")
	ErrInvalidLanguage = fmt.Errorf("unsupported language pair")
	ErrNotFound        = fmt.Errorf("word not found in dictionary")
	ErrBadStatus       = fmt.Errorf("unexpected response status")
	ErrNoEntryBody     = fmt.Errorf("no entry body in page, the site layout may have changed")
)
