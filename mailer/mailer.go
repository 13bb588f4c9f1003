// Package mailer assembles MIME email messages (plain text, HTML
// alternative, attachments) and delivers them over SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/ghetzel/go-stockutil/log"
)

// Attachment is a file attached to a Message.
type Attachment struct {
	Filename string
	Data     []byte
}

// Message is an email to be assembled and sent.
type Message struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

func parseAddresses(addrs []string) ([]*mail.Address, error) {
	out := make([]*mail.Address, 0, len(addrs))

	for _, addr := range addrs {
		if parsed, err := mail.ParseAddress(addr); err == nil {
			out = append(out, parsed)
		} else {
			return nil, fmt.Errorf("bad address %q: %v", addr, err)
		}
	}

	return out, nil
}

// Recipients returns every envelope recipient: To, Cc, and Bcc.
func (self *Message) Recipients() []string {
	out := make([]string, 0, len(self.To)+len(self.Cc)+len(self.Bcc))
	out = append(out, self.To...)
	out = append(out, self.Cc...)
	out = append(out, self.Bcc...)
	return out
}

// Bytes assembles the message into wire-format MIME.  Bcc recipients are
// deliberately not written into the headers.
func (self *Message) Bytes() ([]byte, error) {
	if self.From == `` {
		return nil, fmt.Errorf("a From address is required")
	}

	if len(self.To) == 0 {
		return nil, fmt.Errorf("at least one To address is required")
	}

	if self.Text == `` && self.HTML == `` {
		return nil, fmt.Errorf("a Text or HTML body is required")
	}

	from, err := parseAddresses([]string{self.From})

	if err != nil {
		return nil, err
	}

	to, err := parseAddresses(self.To)

	if err != nil {
		return nil, err
	}

	var header mail.Header

	header.SetDate(time.Now())
	header.SetAddressList(`From`, from)
	header.SetAddressList(`To`, to)
	header.SetSubject(self.Subject)

	if len(self.Cc) > 0 {
		if cc, err := parseAddresses(self.Cc); err == nil {
			header.SetAddressList(`Cc`, cc)
		} else {
			return nil, err
		}
	}

	var buffer bytes.Buffer

	writer, err := mail.CreateWriter(&buffer, header)

	if err != nil {
		return nil, err
	}

	inline, err := writer.CreateInline()

	if err != nil {
		return nil, err
	}

	if self.Text != `` {
		var th mail.InlineHeader
		th.SetContentType(`text/plain`, map[string]string{`charset`: `utf-8`})

		if part, err := inline.CreatePart(th); err == nil {
			if _, err := io.WriteString(part, self.Text); err != nil {
				return nil, err
			}

			part.Close()
		} else {
			return nil, err
		}
	}

	if self.HTML != `` {
		var hh mail.InlineHeader
		hh.SetContentType(`text/html`, map[string]string{`charset`: `utf-8`})

		if part, err := inline.CreatePart(hh); err == nil {
			if _, err := io.WriteString(part, self.HTML); err != nil {
				return nil, err
			}

			part.Close()
		} else {
			return nil, err
		}
	}

	inline.Close()

	for _, attachment := range self.Attachments {
		var ah mail.AttachmentHeader
		ah.SetFilename(attachment.Filename)

		if part, err := writer.CreateAttachment(ah); err == nil {
			if _, err := part.Write(attachment.Data); err != nil {
				return nil, err
			}

			part.Close()
		} else {
			return nil, err
		}
	}

	writer.Close()

	return buffer.Bytes(), nil
}

// Sender delivers messages through one SMTP server.
type Sender struct {
	// server address as "host:port"
	Address string

	// credentials for PLAIN authentication; empty disables auth
	Username string
	Password string
}

// Send assembles the message and delivers it to every recipient.  STARTTLS is
// negotiated automatically when the server advertises it.
func (self *Sender) Send(message *Message) error {
	data, err := message.Bytes()

	if err != nil {
		return err
	}

	var auth smtp.Auth

	if self.Username != `` {
		host, _, err := net.SplitHostPort(self.Address)

		if err != nil {
			host = self.Address
		}

		auth = smtp.PlainAuth(``, self.Username, self.Password, host)
	}

	from, err := mail.ParseAddress(message.From)

	if err != nil {
		return err
	}

	recipients := message.Recipients()

	log.Debugf("mailer: sending %d bytes to %d recipients via %s", len(data), len(recipients), self.Address)

	return smtp.SendMail(self.Address, auth, from.Address, recipients, data)
}
