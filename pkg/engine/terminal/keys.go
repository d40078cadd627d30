package terminal

import (
	"bufio"
	"io"
)

// Key names produced by KeyReader for non-printable keys. Printable
// characters are returned as themselves, except space.
const (
	KeyArrowUp    = "arrow_up"
	KeyArrowDown  = "arrow_down"
	KeyArrowLeft  = "arrow_left"
	KeyArrowRight = "arrow_right"
	KeyEnter      = "enter"
	KeyEscape     = "escape"
	KeySpace      = "space"
	KeyBackspace  = "backspace"
	KeyTab        = "tab"
	KeyCtrlC      = "ctrl_c"
)

// KeyReader decodes raw-mode terminal bytes into key names.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader reads keys from r, usually os.Stdin in raw mode.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until a key is available. Unknown escape sequences are
// discarded and reading continues.
func (k *KeyReader) ReadKey() (string, error) {
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 0x1b:
			name, ok := k.readEscape()
			if ok {
				return name, nil
			}
			continue
		case b == 3:
			return KeyCtrlC, nil
		case b == '\n' || b == '\r':
			return KeyEnter, nil
		case b == 127 || b == 8:
			return KeyBackspace, nil
		case b == '\t':
			return KeyTab, nil
		case b == ' ':
			return KeySpace, nil
		case b > 32 && b < 127:
			return string(b), nil
		}
	}
}

// readEscape decodes what follows an ESC byte. A lone ESC (nothing else
// buffered) is the escape key.
func (k *KeyReader) readEscape() (string, bool) {
	if k.r.Buffered() == 0 {
		return KeyEscape, true
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return KeyEscape, true
	}
	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		return KeyEscape, true
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", false
	}
	switch b3 {
	case 'A':
		return KeyArrowUp, true
	case 'B':
		return KeyArrowDown, true
	case 'C':
		return KeyArrowRight, true
	case 'D':
		return KeyArrowLeft, true
	}

	// skip the rest of longer sequences such as ESC [ 1 5 ~
	for b3 >= '0' && b3 <= '9' || b3 == ';' {
		if b3, err = k.r.ReadByte(); err != nil {
			break
		}
	}
	return "", false
}

// Pump reads keys and sends them on keys until reading fails. The read
// error is returned; io.EOF means the input was closed.
func (k *KeyReader) Pump(keys chan<- string) error {
	for {
		key, err := k.ReadKey()
		if err != nil {
			return err
		}
		keys <- key
	}
}
