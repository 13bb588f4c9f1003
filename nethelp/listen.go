package nethelp

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/netutil"
)

// LineHandler receives one newline-delimited request line and returns the
// response line to write back.
type LineHandler func(line string) string

// TCPServer accepts TCP connections and feeds newline-delimited requests to a
// LineHandler, one connection per goroutine.
type TCPServer struct {
	// address to listen on; empty selects 127.0.0.1 with an ephemeral port
	Address string

	Handler LineHandler

	listener net.Listener
	wg       sync.WaitGroup
}

// Listen binds the server's address.  After Listen returns, Addr reports the
// bound address (useful with ephemeral ports).
func (self *TCPServer) Listen() error {
	if self.Handler == nil {
		return fmt.Errorf("a Handler is required")
	}

	if self.Address == `` {
		if port, err := netutil.EphemeralPort(); err == nil {
			self.Address = fmt.Sprintf("127.0.0.1:%d", port)
		} else {
			return err
		}
	}

	if listener, err := net.Listen(`tcp`, self.Address); err == nil {
		self.listener = listener
		return nil
	} else {
		return err
	}
}

// Addr returns the bound address, or an empty string before Listen.
func (self *TCPServer) Addr() string {
	if self.listener != nil {
		return self.listener.Addr().String()
	}

	return ``
}

// Serve accepts connections until the context is canceled or Close is called.
func (self *TCPServer) Serve(ctx context.Context) error {
	if self.listener == nil {
		if err := self.Listen(); err != nil {
			return err
		}
	}

	go func() {
		<-ctx.Done()
		self.listener.Close()
	}()

	for {
		conn, err := self.listener.Accept()

		if err != nil {
			self.wg.Wait()

			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		self.wg.Add(1)

		go func(conn net.Conn) {
			defer self.wg.Done()
			defer conn.Close()

			scanner := bufio.NewScanner(conn)

			for scanner.Scan() {
				response := self.Handler(scanner.Text())

				if _, err := conn.Write([]byte(response + "\n")); err != nil {
					log.Debugf("tcpserver: write to %v failed: %v", conn.RemoteAddr(), err)
					return
				}
			}
		}(conn)
	}
}

// Close stops accepting connections.
func (self *TCPServer) Close() error {
	if self.listener != nil {
		return self.listener.Close()
	}

	return nil
}

// SendLine connects to the given address, writes one line, and returns the
// single-line response.
func SendLine(address string, line string) (string, error) {
	if conn, err := net.Dial(`tcp`, address); err == nil {
		defer conn.Close()

		if _, err := conn.Write([]byte(line + "\n")); err != nil {
			return ``, err
		}

		scanner := bufio.NewScanner(conn)

		if scanner.Scan() {
			return scanner.Text(), nil
		}

		return ``, scanner.Err()
	} else {
		return ``, err
	}
}
