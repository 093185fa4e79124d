package bitmap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/robalobadob/novelties/internal/console"
)

// Session asks for a message and prints it through the template.
type Session struct {
	Console *console.Console
	Source  TemplateSource
}

func (s *Session) Play(ctx context.Context) error {
	c := s.Console
	c.Println("Bitmap Message, by Al Sweigart")
	c.Println("Enter the message to display with the bitmap.")

	msg, err := c.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if msg == "" {
		c.Println("No message - exiting.")
		return nil
	}

	template, err := s.Source.FetchTemplate(ctx)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}
	art, err := Render(template, msg)
	if err != nil {
		return err
	}
	c.Println(art)
	return nil
}
