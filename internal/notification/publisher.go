// Package notification hands article lifecycle events to the external
// notification system. Delivery (mail, digests) happens on the other side of
// the queue; this core only publishes.
package notification

import (
	"editorial/internal/models"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

const statusQueue = "editorial.article.status"

type Publisher interface {
	ArticleStatusChanged(article *models.Article) error
	Close() error
}

// StatusEvent is the wire form of a status change.
type StatusEvent struct {
	ArticleID uint          `json:"article_id"`
	Title     string        `json:"title"`
	Status    models.Status `json:"status"`
	CensorID  *uint         `json:"censor_id,omitempty"`
	AuthorIDs []uint        `json:"author_ids"`
	At        time.Time     `json:"at"`
}

type amqpPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPPublisher(url string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if _, err := channel.QueueDeclare(statusQueue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	return &amqpPublisher{conn: conn, channel: channel}, nil
}

func (p *amqpPublisher) ArticleStatusChanged(article *models.Article) error {
	event := StatusEvent{
		ArticleID: article.ID,
		Title:     article.Title,
		Status:    article.Status,
		CensorID:  article.CensorID,
		AuthorIDs: article.AuthorIDs(),
		At:        time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.channel.Publish("", statusQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (p *amqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

// NoopPublisher is used when no message broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) ArticleStatusChanged(*models.Article) error { return nil }

func (NoopPublisher) Close() error { return nil }
