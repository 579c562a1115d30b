package sendsns

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/stretchr/testify/assert"
)

type mockSNS struct {
	snsiface.SNSAPI
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSNS) Publish(input *sns.PublishInput) (*sns.PublishOutput, error) {
	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, m.err
	}
	return &sns.PublishOutput{MessageId: aws.String("message-id")}, nil
}

func TestNotify(t *testing.T) {
	client := &mockSNS{}
	publisher := NewWithClient(client, "arn:aws:sns:us-west-2:123456789012:uploads")

	err := publisher.Notify("YouTube Video Uploaded", "https://youtu.be/abc")
	assert.Nil(t, err)
	assert.Len(t, client.inputs, 1)
	assert.EqualValues(t, "arn:aws:sns:us-west-2:123456789012:uploads", *client.inputs[0].TopicArn)
	assert.EqualValues(t, "YouTube Video Uploaded", *client.inputs[0].Subject)
	assert.EqualValues(t, "https://youtu.be/abc", *client.inputs[0].Message)
}

func TestNotifyErrors(t *testing.T) {
	// Publish failure
	client := &mockSNS{err: errors.New("throttled")}
	err := NewWithClient(client, "arn").Notify("subject", "message")
	assert.EqualError(t, err, "throttled")

	// No topic
	client = &mockSNS{}
	err = NewWithClient(client, "").Notify("subject", "message")
	assert.NotNil(t, err)
	assert.Empty(t, client.inputs)
}
