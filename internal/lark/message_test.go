package lark

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/7a6163/lark-notifier/internal/segment"
)

func TestNewMessageShape(t *testing.T) {
	segs := segment.Split("Hello World Test", []string{"World"})
	msg := NewMessage("Deploy", segs)

	if msg.MsgType != "post" {
		t.Errorf("msg_type = %q, want post", msg.MsgType)
	}
	if msg.Content.Post.ZhCN.Title != "Deploy" {
		t.Errorf("title = %q, want Deploy", msg.Content.Post.ZhCN.Title)
	}

	lines := msg.Content.Post.ZhCN.Content
	if len(lines) != 1 {
		t.Fatalf("expected 1 content line, got %d", len(lines))
	}
	elements := lines[0]
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d: %v", len(elements), elements)
	}
	if elements[0].Tag != "text" || elements[0].Href != nil {
		t.Errorf("plain element has tag %q, href %v", elements[0].Tag, elements[0].Href)
	}
	if elements[1].Tag != "a" || elements[1].Text != "World" {
		t.Errorf("highlight element = %+v", elements[1])
	}
	if elements[1].Href == nil || *elements[1].Href != "" {
		t.Errorf("highlight element href = %v, want empty string", elements[1].Href)
	}
}

func TestMessageJSONFieldNames(t *testing.T) {
	msg := NewMessage("T", segment.Split("a b", []string{"b"}))
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)

	for _, want := range []string{`"msg_type":"post"`, `"post"`, `"zh_cn"`, `"title":"T"`, `"tag":"a"`, `"href":""`} {
		if !strings.Contains(body, want) {
			t.Errorf("payload missing %s: %s", want, body)
		}
	}
	// Plain elements carry no href, unsigned messages no sign fields.
	for _, reject := range []string{`"sign"`, `"timestamp"`} {
		if strings.Contains(body, reject) {
			t.Errorf("unsigned payload contains %s: %s", reject, body)
		}
	}
	if strings.Count(body, `"href"`) != 1 {
		t.Errorf("expected exactly one href field: %s", body)
	}
}

func TestSignWith(t *testing.T) {
	msg := NewMessage("T", segment.Split("body", nil))
	msg.SignWith("abc", 1700000000)

	if msg.Timestamp != "1700000000" {
		t.Errorf("timestamp = %q, want \"1700000000\"", msg.Timestamp)
	}
	if msg.Sign != "VIS10b0EBvzzSdFnuk4tznEmK5wHaruvf/WnViv2yR4=" {
		t.Errorf("unexpected sign %q", msg.Sign)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `"sign":`) || !strings.Contains(body, `"timestamp":"1700000000"`) {
		t.Errorf("signed payload missing sign fields: %s", body)
	}
}
