package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gemfold/atelier/pkg/errors"
	"github.com/gemfold/atelier/pkg/logging"
)

// DecodeResponse decodes a JSON response into the target structure. Non-2xx
// responses become an APIError carrying the status code and response body.
func DecodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Str("endpoint", endpoint).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewAPIError(endpoint, resp.StatusCode, string(body))
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}
