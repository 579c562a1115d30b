package sendsns

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
)

// Publisher sends upload alerts to an SNS topic.
type Publisher struct {
	client   snsiface.SNSAPI
	topicArn string
}

// New creates a publisher using the shared AWS config of the environment.
func New(topicArn string) (*Publisher, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}
	return NewWithClient(sns.New(sess), topicArn), nil
}

func NewWithClient(client snsiface.SNSAPI, topicArn string) *Publisher {
	return &Publisher{client: client, topicArn: topicArn}
}

func (p *Publisher) Notify(subject string, message string) error {
	if p.topicArn == "" {
		return errors.New("no SNS topic configured")
	}
	_, err := p.client.Publish(&sns.PublishInput{
		Message:  aws.String(message),
		TopicArn: aws.String(p.topicArn),
		Subject:  aws.String(subject),
	})
	return err
}
