// Package lark builds and sends Lark custom-bot webhook messages.
package lark

import (
	"strconv"

	"github.com/7a6163/lark-notifier/internal/segment"
	"github.com/7a6163/lark-notifier/internal/sign"
)

// Message is the webhook request body for a "post" message.
type Message struct {
	MsgType   string  `json:"msg_type"`
	Content   Content `json:"content"`
	Sign      string  `json:"sign,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
}

type Content struct {
	Post Post `json:"post"`
}

type Post struct {
	ZhCN PostContent `json:"zh_cn"`
}

type PostContent struct {
	Title   string          `json:"title"`
	Content [][]TextElement `json:"content"`
}

// TextElement is one run of post text. Highlighted runs use the "a" tag
// with an empty href, which renders as highlight-only with no navigation;
// plain runs omit href entirely.
type TextElement struct {
	Tag  string  `json:"tag"`
	Text string  `json:"text"`
	Href *string `json:"href,omitempty"`
}

// NewMessage assembles an unsigned post message from a title and body
// segments.
func NewMessage(title string, segments []segment.Segment) *Message {
	elements := make([]TextElement, 0, len(segments))
	for _, s := range segments {
		if s.Highlight {
			href := ""
			elements = append(elements, TextElement{Tag: "a", Text: s.Text, Href: &href})
			continue
		}
		elements = append(elements, TextElement{Tag: "text", Text: s.Text})
	}

	return &Message{
		MsgType: "post",
		Content: Content{
			Post: Post{
				ZhCN: PostContent{
					Title:   title,
					Content: [][]TextElement{elements},
				},
			},
		},
	}
}

// SignWith attaches the signature fields for the given secret and unix
// timestamp (seconds).
func (m *Message) SignWith(secret string, timestamp int64) {
	m.Sign = sign.Generate(timestamp, secret)
	m.Timestamp = strconv.FormatInt(timestamp, 10)
}
