package services

import (
	"errors"
	"fleet-console/internal/domain"
	"fleet-console/internal/platform/metrics"
	"strings"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the transient message shown after an operation.
type Notice struct {
	Kind NoticeKind
	Text string
}

func (n Notice) IsZero() bool { return n.Text == "" }

func (n Notice) IsError() bool { return n.Kind == NoticeError }

// join merges two notices; an error wins over a success.
func (n Notice) join(other Notice) Notice {
	switch {
	case other.IsZero():
		return n
	case n.IsZero():
		return other
	}
	kind := n.Kind
	if other.Kind == NoticeError {
		kind = NoticeError
	}
	return Notice{Kind: kind, Text: n.Text + "; " + other.Text}
}

func successNotice(screen, text string) Notice {
	metrics.NoticesTotal.WithLabelValues(screen, string(NoticeSuccess)).Inc()
	return Notice{Kind: NoticeSuccess, Text: text}
}

func errorNotice(screen, fallback string, err error) Notice {
	metrics.NoticesTotal.WithLabelValues(screen, string(NoticeError)).Inc()
	return Notice{Kind: NoticeError, Text: UserMessage(err, fallback)}
}

// UserMessage picks the text shown for err: the validation message, the
// message the API sent, or fallback.
func UserMessage(err error, fallback string) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		if msg := strings.TrimSpace(um.UserMessage()); msg != "" {
			return msg
		}
	}
	return fallback
}
