// Package soap implements the SOAP client side of UPnP control:
// building action requests, posting them, and decoding action
// responses and faults.
package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"gargoton.petite-maison-orange.fr/eric/pmocontrol/pmodidl"
	"gargoton.petite-maison-orange.fr/eric/pmocontrol/pmolog"
)

// UPnPError is a UPnP fault decoded from a SOAP response, with the
// error code the device reported (501, 701, ...).
type UPnPError struct {
	Code        int
	Description string
}

func (e *UPnPError) Error() string {
	return fmt.Sprintf("UPnP error %d: %s", e.Code, e.Description)
}

// Client posts UPnP action calls to device control endpoints.
type Client struct {
	HTTPClient *http.Client
}

// NewClient builds a client on top of httpClient, or on
// http.DefaultClient when nil.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{HTTPClient: httpClient}
}

// Call invokes one action on a control endpoint and returns the
// response arguments by name. A fault reported by the device comes
// back as a *UPnPError.
func (c *Client) Call(ctx context.Context, endpoint, serviceURN, action string, args []Arg) (map[string]string, error) {
	payload, err := BuildUPnPRequest(serviceURN, action, args)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", `text/xml; charset="utf-8"`)
	req.Header.Set("SOAPACTION", fmt.Sprintf(`"%s#%s"`, serviceURN, action))

	log.Debugf("📡 SOAP call %s on %s", action, endpoint)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", action, err)
	}

	values, upnpErr, err := ParseUPnPResponse(body)
	if err != nil {
		log.Debugf("❌ Undecodable response to %s:\n%s", action, pmolog.PrettyPrintXML(string(body)))
		return nil, fmt.Errorf("parsing %s response: %w", action, err)
	}
	if upnpErr != nil {
		return nil, upnpErr
	}
	logResponse(action, values)
	return values, nil
}

// logResponse traces response arguments at debug level. DIDL-Lite
// payloads are rendered as markdown, anything XML-shaped is
// re-indented, plain values pass through.
func logResponse(action string, values map[string]string) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	log.Debugf("📡 Response to %s:", action)
	for k, v := range values {
		if doc, err := pmodidl.FromString(v); err == nil {
			log.Debugf("    %s =\n%s", k, doc.ToMarkdown())
		} else if strings.HasPrefix(strings.TrimSpace(v), "<") {
			log.Debugf("    %s =\n%s", k, pmolog.PrettyPrintXML(v))
		} else {
			log.Debugf("    %s = %s", k, v)
		}
	}
}

type soapFault struct {
	FaultCode   string `xml:"faultcode"`
	FaultString string `xml:"faultstring"`
	Detail      struct {
		UPnPError struct {
			ErrorCode        int    `xml:"errorCode"`
			ErrorDescription string `xml:"errorDescription"`
		} `xml:"UPnPError"`
	} `xml:"detail"`
}

// ParseUPnPResponse decodes a SOAP response body. It returns the
// response arguments, or the UPnP fault the device sent, or a parse
// error when the body is not a SOAP envelope at all.
func ParseUPnPResponse(body []byte) (map[string]string, *UPnPError, error) {
	var env Envelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(env.Body.Content))
	values := make(map[string]string)
	depth := 0

	for {
		tok, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				return nil, nil, err
			}
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if t.Name.Local == "Fault" {
					var fault soapFault
					if err := decoder.DecodeElement(&fault, &t); err != nil {
						return nil, nil, err
					}
					return nil, &UPnPError{
						Code:        fault.Detail.UPnPError.ErrorCode,
						Description: fault.Detail.UPnPError.ErrorDescription,
					}, nil
				}
				depth++
				continue
			}
			var value string
			if err := decoder.DecodeElement(&value, &t); err != nil {
				return nil, nil, err
			}
			values[t.Name.Local] = value
		case xml.EndElement:
			if depth > 0 {
				depth--
			}
		}
	}

	return values, nil, nil
}
