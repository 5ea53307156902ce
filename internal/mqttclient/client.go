package mqttclient

import (
	"encoding/json"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
)

// Client publishes finished assessment reports to an MQTT broker.
// Publishes are fire-and-forget: a dropped broker never fails a request.
type Client struct {
	conn      mqtt.Client
	topicBase string
	connected atomic.Bool
	log       zerolog.Logger
}

type Options struct {
	BrokerURL string
	ClientID  string
	TopicBase string
	Username  string
	Password  string
	Log       zerolog.Logger
}

func Connect(opts Options) (*Client, error) {
	c := &Client{
		topicBase: opts.TopicBase,
		log:       opts.Log,
	}

	clientOpts := mqtt.NewClientOptions().
		AddBroker(opts.BrokerURL).
		SetClientID(opts.ClientID).
		SetAutoReconnect(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOrderMatters(false).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(c.onConnectionLost)

	if opts.Username != "" {
		clientOpts.SetUsername(opts.Username)
	}
	if opts.Password != "" {
		clientOpts.SetPassword(opts.Password)
	}

	c.conn = mqtt.NewClient(clientOpts)
	token := c.conn.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, err
	}

	return c, nil
}

// PublishReport serializes v and publishes it under {topicBase}/{analysisID}.
// Delivery is not awaited; failures surface in the broker client's logs.
func (c *Client) PublishReport(analysisID string, v any) {
	if !c.connected.Load() {
		c.log.Debug().Str("analysis_id", analysisID).Msg("mqtt disconnected, dropping report notification")
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		c.log.Error().Err(err).Str("analysis_id", analysisID).Msg("marshal report for mqtt")
		return
	}
	topic := c.topicBase + "/" + analysisID
	c.conn.Publish(topic, 0, false, payload)
	c.log.Debug().Str("topic", topic).Int("payload_size", len(payload)).Msg("report published")
}

func (c *Client) onConnect(_ mqtt.Client) {
	c.connected.Store(true)
	c.log.Info().Str("topic_base", c.topicBase).Msg("mqtt connected")
}

func (c *Client) onConnectionLost(_ mqtt.Client, err error) {
	c.connected.Store(false)
	c.log.Warn().Err(err).Msg("mqtt connection lost, will auto-reconnect")
}

func (c *Client) IsConnected() bool {
	return c.connected.Load()
}

func (c *Client) Close() {
	c.log.Info().Msg("disconnecting mqtt client")
	c.conn.Disconnect(1000)
}
