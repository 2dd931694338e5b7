package radio

import (
	"fmt"
	"sync"

	"go.bug.st/serial"
)

// Serial adapts a UART-attached radio module to the Transport
// interface. The port's own Read blocks, so a background goroutine
// drains it into a buffer; Buffered and Read then never block, which
// is what the tick loop requires.
type Serial struct {
	port serial.Port

	mu     sync.Mutex
	buf    []byte
	closed bool
}

// OpenSerial opens the radio module's port at the given baud rate and
// starts the background reader.
func OpenSerial(name string, baud int) (*Serial, error) {
	mode := &serial.Mode{BaudRate: baud}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}

	s := &Serial{port: port}
	go s.listen()
	return s, nil
}

func (s *Serial) listen() {
	buf := make([]byte, 256)
	for {
		n, err := s.port.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.buf = append(s.buf, buf[:n]...)
			s.mu.Unlock()
		}
		if err != nil {
			s.mu.Lock()
			s.closed = true
			s.mu.Unlock()
			return
		}
	}
}

// Buffered reports how many received bytes are readable right now.
func (s *Serial) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Read drains up to len(p) buffered bytes without blocking.
func (s *Serial) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

// Write sends bytes to the radio module.
func (s *Serial) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// Close closes the underlying port, which also stops the reader.
func (s *Serial) Close() error {
	return s.port.Close()
}
