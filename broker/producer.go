package broker

import (
	"log"

	"taskwise/taskwise/config"

	"github.com/nats-io/nats.go"
)

var producer *nats.Conn

func InitProducer(cfg config.Config) error {
	nc, err := nats.Connect(cfg.BrokerURL, nats.Name("taskwise-producer"))
	if err != nil {
		return err
	}
	producer = nc
	log.Println("NATS producer initialized")
	return nil
}

func PublishMessage(subject string, value []byte) {
	if producer == nil {
		log.Println("NATS producer is not initialized, dropping message")
		return
	}

	if err := producer.Publish(subject, value); err != nil {
		log.Printf("Failed to publish message to %s: %v", subject, err)
	}
}

func CloseProducer() {
	if producer != nil {
		if err := producer.Drain(); err != nil {
			log.Printf("Failed to drain NATS connection: %v", err)
		}
		producer = nil
	}
}
