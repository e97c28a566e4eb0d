package soap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuildUPnPRequest(t *testing.T) {
	payload, err := BuildUPnPRequest("urn:schemas-upnp-org:service:ContentDirectory:1", "Browse", []Arg{
		{Name: "ObjectID", Value: "0"},
		{Name: "BrowseFlag", Value: "BrowseDirectChildren"},
		{Name: "Filter", Value: "*"},
	})
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	body := string(payload)

	if !strings.Contains(body, `<u:Browse xmlns:u="urn:schemas-upnp-org:service:ContentDirectory:1">`) {
		t.Errorf("action element missing:\n%s", body)
	}
	if !strings.Contains(body, "<ObjectID>0</ObjectID>") {
		t.Errorf("argument missing:\n%s", body)
	}
	// Order matters to some devices.
	if strings.Index(body, "<ObjectID>") > strings.Index(body, "<BrowseFlag>") {
		t.Errorf("argument order not preserved:\n%s", body)
	}
}

func TestBuildUPnPRequestEscapesValues(t *testing.T) {
	payload, err := BuildUPnPRequest("urn:x:1", "Act", []Arg{{Name: "A", Value: `<tag> & "q"`}})
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if strings.Contains(string(payload), "<tag>") {
		t.Errorf("value not escaped:\n%s", payload)
	}
}

func TestParseUPnPResponse(t *testing.T) {
	body := []byte(`<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <u:BrowseResponse xmlns:u="urn:schemas-upnp-org:service:ContentDirectory:1">
      <Result>&lt;DIDL-Lite/&gt;</Result>
      <NumberReturned>2</NumberReturned>
      <TotalMatches>42</TotalMatches>
    </u:BrowseResponse>
  </s:Body>
</s:Envelope>`)

	values, upnpErr, err := ParseUPnPResponse(body)
	if err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if upnpErr != nil {
		t.Fatalf("unexpected fault: %v", upnpErr)
	}
	if values["Result"] != "<DIDL-Lite/>" {
		t.Errorf("wrong Result: %q", values["Result"])
	}
	if values["NumberReturned"] != "2" || values["TotalMatches"] != "42" {
		t.Errorf("wrong counters: %v", values)
	}
}

func TestParseUPnPResponseFault(t *testing.T) {
	body := []byte(`<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <s:Fault>
      <faultcode>s:Client</faultcode>
      <faultstring>UPnPError</faultstring>
      <detail>
        <UPnPError xmlns="urn:schemas-upnp-org:control-1-0">
          <errorCode>701</errorCode>
          <errorDescription>Transition not available</errorDescription>
        </UPnPError>
      </detail>
    </s:Fault>
  </s:Body>
</s:Envelope>`)

	_, upnpErr, err := ParseUPnPResponse(body)
	if err != nil {
		t.Fatalf("failed to parse fault: %v", err)
	}
	if upnpErr == nil {
		t.Fatal("fault not detected")
	}
	if upnpErr.Code != 701 {
		t.Errorf("wrong error code: %d", upnpErr.Code)
	}
	if upnpErr.Description != "Transition not available" {
		t.Errorf("wrong description: %q", upnpErr.Description)
	}
}

func TestParseUPnPResponseBadXML(t *testing.T) {
	if _, _, err := ParseUPnPResponse([]byte("not xml at all")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestClientCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("SOAPACTION"); got != `"urn:schemas-upnp-org:service:AVTransport:1#Play"` {
			t.Errorf("wrong SOAPACTION header: %q", got)
		}
		w.Header().Set("Content-Type", `text/xml; charset="utf-8"`)
		w.Write([]byte(`<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body><u:PlayResponse xmlns:u="urn:schemas-upnp-org:service:AVTransport:1"/></s:Body>
</s:Envelope>`))
	}))
	defer server.Close()

	client := NewClient(nil)
	values, err := client.Call(context.Background(), server.URL, "urn:schemas-upnp-org:service:AVTransport:1", "Play", []Arg{
		{Name: "InstanceID", Value: "0"},
		{Name: "Speed", Value: "1"},
	})
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected no response arguments, got %v", values)
	}
}

func TestClientCallFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body><s:Fault>
    <faultcode>s:Client</faultcode>
    <faultstring>UPnPError</faultstring>
    <detail><UPnPError xmlns="urn:schemas-upnp-org:control-1-0">
      <errorCode>402</errorCode><errorDescription>Invalid Args</errorDescription>
    </UPnPError></detail>
  </s:Fault></s:Body>
</s:Envelope>`))
	}))
	defer server.Close()

	client := NewClient(nil)
	_, err := client.Call(context.Background(), server.URL, "urn:x:1", "Bogus", nil)
	var upnpErr *UPnPError
	if !errors.As(err, &upnpErr) {
		t.Fatalf("expected *UPnPError, got %v", err)
	}
	if upnpErr.Code != 402 {
		t.Errorf("wrong error code: %d", upnpErr.Code)
	}
}
