package mockclient

import "net/http"

// MockClient replaces restclient.Client in tests. Requests are answered by
// GetDoFunc.
type MockClient struct {
	Requests []*http.Request
}

var (
	GetDoFunc func(req *http.Request) (*http.Response, error)
)

func (m *MockClient) Do(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	return GetDoFunc(req)
}
