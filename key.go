package wizard

import (
	"sync"
)

// KeyName identifies a decoded key event symbolically.
type KeyName int

// Symbolic key names produced by the key decoder.
const (
	// KeyNone marks a key with no bound meaning (unrecognized control
	// characters). Sessions ignore these without redrawing.
	KeyNone KeyName = iota
	// KeyRune is a printable character; the payload is in Key.Rune.
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyReturn
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyTab
	KeySpace
	KeyEscape
	// KeyCancel is Ctrl+C.
	KeyCancel
	// KeyEOF is Ctrl+D or end of the input stream.
	KeyEOF
)

// String returns the symbolic name of the key.
func (n KeyName) String() string {
	switch n {
	case KeyRune:
		return "rune"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyReturn:
		return "return"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyTab:
		return "tab"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	case KeyCancel:
		return "cancel"
	case KeyEOF:
		return "eof"
	default:
		return "none"
	}
}

// Key is one decoded key event.
type Key struct {
	Name KeyName // symbolic name
	Rune rune    // printable payload, set for KeyRune and KeySpace
	Seq  string  // raw sequence as read from the terminal
}

// decodeKey reads the next key event from the terminal. Escape sequences for
// arrows, Home/End and Delete are collapsed into a single event; a lone ESC
// (nothing buffered behind it) is reported as KeyEscape.
func decodeKey(t terminalInterface) (Key, error) {
	r, _, err := t.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case '\r', '\n':
		return Key{Name: KeyReturn, Seq: string(r)}, nil
	case '\x03': // Ctrl+C
		return Key{Name: KeyCancel, Seq: string(r)}, nil
	case '\x04': // Ctrl+D
		return Key{Name: KeyEOF, Seq: string(r)}, nil
	case '\x7f', '\b':
		return Key{Name: KeyBackspace, Seq: string(r)}, nil
	case '\t':
		return Key{Name: KeyTab, Seq: string(r)}, nil
	case ' ':
		return Key{Name: KeySpace, Rune: ' ', Seq: " "}, nil
	case '\x01': // Ctrl+A
		return Key{Name: KeyHome, Seq: string(r)}, nil
	case '\x05': // Ctrl+E
		return Key{Name: KeyEnd, Seq: string(r)}, nil
	case '\x1b':
		return decodeEscape(t)
	}

	if r >= 32 {
		return Key{Name: KeyRune, Rune: r, Seq: string(r)}, nil
	}
	return Key{Name: KeyNone, Rune: r, Seq: string(r)}, nil
}

// decodeEscape consumes the remainder of an ESC-prefixed sequence.
func decodeEscape(t terminalInterface) (Key, error) {
	if !t.Buffered() {
		return Key{Name: KeyEscape, Seq: "\x1b"}, nil
	}

	seq := make([]rune, 0, 8)
	for i := 0; i < 8; i++ { // bounded; real sequences are short
		r, _, err := t.ReadRune()
		if err != nil {
			break
		}
		seq = append(seq, r)

		s := string(seq)
		if k, ok := escapeSequences[s]; ok {
			return Key{Name: k, Seq: "\x1b" + s}, nil
		}
		// Sequences like "[3~" terminate on '~'; "[A" style terminate on a
		// letter. Stop scanning once the terminator has been seen.
		last := seq[len(seq)-1]
		if len(seq) >= 2 && (last == '~' || (last >= 'A' && last <= 'Z') || (last >= 'a' && last <= 'z')) {
			break
		}
		if !t.Buffered() {
			break
		}
	}
	return Key{Name: KeyEscape, Seq: "\x1b" + string(seq)}, nil
}

// escapeSequences maps the tail of an ESC sequence to a key name.
var escapeSequences = map[string]KeyName{
	"[A": KeyUp,
	"[B": KeyDown,
	"[C": KeyRight,
	"[D": KeyLeft,
	"[H": KeyHome,
	"[F": KeyEnd,
	"OH": KeyHome,
	"OF": KeyEnd,
	"[1~": KeyHome,
	"[4~": KeyEnd,
	"[3~": KeyDelete,
	"[Z":  KeyTab, // Shift+Tab toggles like Tab
}

// keySource owns the reader goroutine for one terminal and hands out the
// single active subscription. The reader starts on the first subscribe and
// lives as long as the terminal: it delivers decoded keys into one persistent
// buffered channel and parks on it between sessions. A per-subscription
// reader would stay blocked in ReadRune across a detach and race the next
// session for runes, silently eating keystrokes; keeping exactly one reader
// means keys decoded around a detach stay queued for the next subscriber.
type keySource struct {
	term   terminalInterface
	events chan Key

	readerOnce sync.Once

	mu       sync.Mutex
	attached bool
}

func newKeySource(t terminalInterface) *keySource {
	return &keySource{
		term:   t,
		events: make(chan Key, 16),
	}
}

// subscribe enters raw mode and attaches the caller as the sole consumer of
// key events. Subscribing while another subscription is attached fails with
// ErrSessionActive. Repeated subscribe/detach cycles pair raw-mode switches
// and leave no residual state.
func (s *keySource) subscribe() (*keySubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		return nil, ErrSessionActive
	}
	if err := s.term.SetRaw(); err != nil {
		return nil, err
	}
	s.attached = true

	s.readerOnce.Do(func() {
		go s.read()
	})

	return &keySubscription{events: s.events, src: s}, nil
}

// read decodes keys until the input stream ends. Delivery blocks on the
// events buffer, never dropping a key; the goroutine exits only on EOF.
func (s *keySource) read() {
	for {
		k, err := decodeKey(s.term)
		if err != nil {
			k = Key{Name: KeyEOF}
		}
		s.events <- k
		if k.Name == KeyEOF {
			return
		}
	}
}

func (s *keySource) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
	_ = s.term.Restore()
}

// keySubscription is one session's exclusive hold on a key source.
type keySubscription struct {
	events <-chan Key
	src    *keySource

	detachOnce sync.Once
}

// detach releases the subscription and restores the terminal mode. Safe to
// call more than once.
func (s *keySubscription) detach() {
	s.detachOnce.Do(s.src.release)
}
