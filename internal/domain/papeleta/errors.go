package papeleta

import "errors"

var (
	ErrPapeletaNotFound = errors.New("papeleta not found")
	ErrCodigoExists     = errors.New("codigo already registered")
)
