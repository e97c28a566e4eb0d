package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

type Envelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    Body     `xml:"Body"`
}

type Body struct {
	Content []byte `xml:",innerxml"` // raw XML of the Body, parsed in a second pass
}

// Arg is one named input of a UPnP action. Order matters to some
// devices, so arguments are a slice, not a map.
type Arg struct {
	Name  string
	Value string
}

// BuildUPnPRequest builds the SOAP envelope for one UPnP action call.
func BuildUPnPRequest(serviceURN, action string, args []Arg) ([]byte, error) {
	env := &Envelope{
		XMLName: xml.Name{Local: "s:Envelope"},
		Body: Body{
			Content: buildActionCall(serviceURN, action, args),
		},
	}

	return marshalSOAP(env)
}

func buildActionCall(serviceURN, action string, args []Arg) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`<u:%s xmlns:u="%s">`, action, serviceURN))
	for _, arg := range args {
		buf.WriteString(fmt.Sprintf("<%s>%s</%s>", arg.Name, xmlEscape(arg.Value), arg.Name))
	}
	buf.WriteString(fmt.Sprintf(`</u:%s>`, action))
	return buf.Bytes()
}

func marshalSOAP(env *Envelope) ([]byte, error) {
	type soapEnvelope struct {
		XMLName xml.Name `xml:"s:Envelope"`
		SoapNS  string   `xml:"xmlns:s,attr"`
		EncNS   string   `xml:"s:encodingStyle,attr"`
		Body    struct {
			XMLName xml.Name `xml:"s:Body"`
			Content string   `xml:",innerxml"`
		}
	}

	tmp := soapEnvelope{
		SoapNS: "http://schemas.xmlsoap.org/soap/envelope/",
		EncNS:  "http://schemas.xmlsoap.org/soap/encoding/",
	}
	tmp.Body.Content = string(env.Body.Content)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(tmp); err != nil {
		return nil, err
	}
	enc.Flush()
	return buf.Bytes(), nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
