package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageValidation(t *testing.T) {
	assert := require.New(t)

	_, err := (&Message{To: []string{`a@example.com`}, Text: `hi`}).Bytes()
	assert.Error(err)

	_, err = (&Message{From: `a@example.com`, Text: `hi`}).Bytes()
	assert.Error(err)

	_, err = (&Message{From: `a@example.com`, To: []string{`b@example.com`}}).Bytes()
	assert.Error(err)

	_, err = (&Message{From: `not an address`, To: []string{`b@example.com`}, Text: `hi`}).Bytes()
	assert.Error(err)
}

func TestMessageBytes(t *testing.T) {
	assert := require.New(t)

	message := &Message{
		From:    `Sender <sender@example.com>`,
		To:      []string{`rcpt@example.com`},
		Cc:      []string{`cc@example.com`},
		Bcc:     []string{`hidden@example.com`},
		Subject: `greetings`,
		Text:    `plain body`,
		HTML:    `<p>html body</p>`,
		Attachments: []Attachment{
			{Filename: `notes.txt`, Data: []byte(`attached data`)},
		},
	}

	data, err := message.Bytes()
	assert.NoError(err)

	raw := string(data)

	assert.Contains(raw, `From: "Sender" <sender@example.com>`)
	assert.Contains(raw, `To: <rcpt@example.com>`)
	assert.Contains(raw, `Cc: <cc@example.com>`)
	assert.Contains(raw, `Subject: greetings`)
	assert.Contains(raw, `plain body`)
	assert.Contains(raw, `html body`)
	assert.Contains(raw, `notes.txt`)

	// Bcc recipients never appear in headers
	assert.NotContains(raw, `hidden@example.com`)

	// but they are part of the envelope
	assert.Equal([]string{`rcpt@example.com`, `cc@example.com`, `hidden@example.com`}, message.Recipients())

	// multipart structure: alternative bodies plus attachment
	assert.Contains(raw, `multipart/mixed`)
	assert.Contains(raw, `multipart/alternative`)
	assert.Contains(raw, `text/plain`)
	assert.Contains(raw, `text/html`)
}

func TestTextOnlyMessage(t *testing.T) {
	assert := require.New(t)

	data, err := (&Message{
		From:    `a@example.com`,
		To:      []string{`b@example.com`},
		Subject: `solo`,
		Text:    `text only`,
	}).Bytes()

	assert.NoError(err)
	assert.Contains(string(data), `text only`)
	assert.False(strings.Contains(string(data), `text/html`))
}
