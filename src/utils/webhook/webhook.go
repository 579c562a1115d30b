package webhook

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pashonic/ytconsole/src/utils/restclient"
)

type payload struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Webhook posts upload alerts as JSON to an HTTP endpoint.
type Webhook struct {
	url string
}

func New(url string) *Webhook {
	return &Webhook{url: url}
}

func (w *Webhook) Notify(subject string, message string) error {
	body, err := json.Marshal(payload{Subject: subject, Message: message})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	response, err := restclient.Post(w.url, body, headers)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	io.Copy(ioutil.Discard, response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("webhook %s answered %s", w.url, response.Status)
	}
	return nil
}
