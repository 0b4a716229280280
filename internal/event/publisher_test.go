package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/userhub/user-service/internal/model"
	"github.com/userhub/user-service/internal/testutil"
)

// MockProducer mocks the MessageProducer interface
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Send(ctx context.Context, message []byte) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func lastSentMessage(t *testing.T, producer *MockProducer) envelope {
	t.Helper()

	require.NotEmpty(t, producer.Calls)
	raw, ok := producer.Calls[len(producer.Calls)-1].Arguments.Get(1).([]byte)
	require.True(t, ok)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestPublisher_PublishUser(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Send", mock.Anything, mock.Anything).Return(nil)

	publisher := NewPublisher(producer, testutil.MakeNoopLogger())

	user := model.User{
		ID:        7,
		FirstName: "Joe",
		LastName:  "Bloggs",
		Nickname:  "joe99",
		Password:  "secret",
		Email:     "joe@example.com",
		Country:   "England",
	}

	err := publisher.PublishUser(context.Background(), model.EventUserCreated, user)
	require.NoError(t, err)

	env := lastSentMessage(t, producer)
	assert.Equal(t, "USER_CREATED", env.Event)

	var payload model.User
	require.NoError(t, json.Unmarshal([]byte(env.User), &payload))
	assert.Equal(t, user, payload)

	producer.AssertExpectations(t)
}

func TestPublisher_PublishUser_FallsBackToIDWhenSerializationFails(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Send", mock.Anything, mock.Anything).Return(nil)

	publisher := NewPublisher(producer, testutil.MakeNoopLogger())
	publisher.marshal = func(v any) ([]byte, error) {
		return nil, errors.New("serialization broken")
	}

	err := publisher.PublishUser(context.Background(), model.EventUserUpdated, model.User{ID: 42})
	require.NoError(t, err)

	env := lastSentMessage(t, producer)
	assert.Equal(t, "USER_UPDATED", env.Event)
	assert.Equal(t, "42", env.User)
}

func TestPublisher_PublishID(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Send", mock.Anything, mock.Anything).Return(nil)

	publisher := NewPublisher(producer, testutil.MakeNoopLogger())

	err := publisher.PublishID(context.Background(), model.EventUserDeleted, 13)
	require.NoError(t, err)

	env := lastSentMessage(t, producer)
	assert.Equal(t, "USER_DELETED", env.Event)
	assert.Equal(t, "13", env.User)
}

func TestPublisher_ProducerFailurePropagates(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Send", mock.Anything, mock.Anything).Return(errors.New("broker unreachable"))

	publisher := NewPublisher(producer, testutil.MakeNoopLogger())

	err := publisher.PublishID(context.Background(), model.EventUserDeleted, 13)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unreachable")
}

func TestEnvelope_HasExactlyEventAndUserKeys(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Send", mock.Anything, mock.Anything).Return(nil)

	publisher := NewPublisher(producer, testutil.MakeNoopLogger())

	require.NoError(t, publisher.PublishID(context.Background(), model.EventUserCreated, 1))

	raw := producer.Calls[0].Arguments.Get(1).([]byte)

	var keys map[string]string
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "event")
	assert.Contains(t, keys, "user")
}
