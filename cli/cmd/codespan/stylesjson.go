package main

import (
	"io"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"codespan.dev/pkg/term"
	"codespan.dev/pkg/termcolor"
)

// colorSpecExtension encodes every termcolor.ColorSpec in its string form,
// so a palette reads the same as in the settings docs.
type colorSpecExtension struct {
	jsoniter.DummyExtension
	specType reflect2.Type
}

func (e *colorSpecExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == e.specType.Type1() {
		return colorSpecEncoder{}
	}
	return nil
}

type colorSpecEncoder struct{}

func (colorSpecEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*termcolor.ColorSpec)(ptr).IsNone()
}

func (colorSpecEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString((*termcolor.ColorSpec)(ptr).String())
}

var stylesEncoder = (func() jsoniter.API {
	enc := jsoniter.Config{IndentionStep: 2}.Froze()
	enc.RegisterExtension(&colorSpecExtension{
		specType: reflect2.TypeOf(termcolor.ColorSpec{}),
	})
	return enc
})()

// writeStylesJSON writes the palette as a JSON object keyed by field name.
func writeStylesJSON(w io.Writer, styles *term.Styles) error {
	data, err := stylesEncoder.Marshal(styles)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
