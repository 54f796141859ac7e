package messaging

import (
	"fmt"
	"log"
	"net/url"
	"podium-service/internal/app/config"
	"podium-service/internal/pkg/constvars"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	rabbitConfig := driverConfig.RabbitMQ
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/%s",
		url.QueryEscape(rabbitConfig.Username),
		url.QueryEscape(rabbitConfig.Password),
		rabbitConfig.Host,
		rabbitConfig.Port,
		url.PathEscape(rabbitConfig.VirtualHost),
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(constvars.ServiceName)

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{Properties: properties})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
