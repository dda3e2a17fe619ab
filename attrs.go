// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

// Import attribute keys and values. The enumerant values match the EGL
// image-attribute vocabulary so that a native importer can hand the encoded
// list to the driver unmodified.
const (
	// AttrNone terminates an encoded attribute list.
	AttrNone int32 = 0x3038

	// AttrImagePreserved requests that buffer contents survive the import
	// ("preserve on use" semantics).
	AttrImagePreserved int32 = 0x30D2

	// AttrColorSpace selects the colorspace the image is sampled in.
	AttrColorSpace int32 = 0x309D

	// AttrColorSpaceSRGB is the sRGB value for AttrColorSpace.
	AttrColorSpaceSRGB int32 = 0x3089

	// AttrProtectedContent marks the image as DRM-protected.
	AttrProtectedContent int32 = 0x32C0

	// AttrFalse and AttrTrue are the boolean attribute values.
	AttrFalse int32 = 0
	AttrTrue  int32 = 1
)

// ImportAttributes is an ordered key/value list handed to the importer when
// creating a native image. The zero value is an empty list.
type ImportAttributes struct {
	kv []int32
}

// Set appends a key/value pair, replacing the value if the key is already
// present. Order of first insertion is preserved.
func (a *ImportAttributes) Set(key, value int32) {
	for i := 0; i+1 < len(a.kv); i += 2 {
		if a.kv[i] == key {
			a.kv[i+1] = value
			return
		}
	}
	a.kv = append(a.kv, key, value)
}

// Get returns the value for key and whether it is present.
func (a *ImportAttributes) Get(key int32) (int32, bool) {
	for i := 0; i+1 < len(a.kv); i += 2 {
		if a.kv[i] == key {
			return a.kv[i+1], true
		}
	}
	return 0, false
}

// Len returns the number of key/value pairs.
func (a *ImportAttributes) Len() int { return len(a.kv) / 2 }

// Slice returns the encoded attribute vector, terminated with AttrNone.
// The returned slice is freshly allocated on each call.
func (a *ImportAttributes) Slice() []int32 {
	out := make([]int32, 0, len(a.kv)+1)
	out = append(out, a.kv...)
	return append(out, AttrNone)
}

// buildImportAttributes assembles the attribute list for importing a buffer
// described by desc. Preserved semantics are always requested. The sRGB
// colorspace attribute is appended only for buffers tagged sRGB. The
// protected-content attribute is appended only when the usage bit is set
// and the runtime capability is present; when the capability is absent the
// attribute is silently omitted and the import proceeds without it.
func buildImportAttributes(desc BufferDescriptor, caps Capabilities) *ImportAttributes {
	attrs := &ImportAttributes{}
	attrs.Set(AttrImagePreserved, AttrTrue)
	if desc.SRGB {
		attrs.Set(AttrColorSpace, AttrColorSpaceSRGB)
	}
	if desc.Usage.Protected() && caps.ProtectedContent {
		attrs.Set(AttrProtectedContent, AttrTrue)
	}
	return attrs
}
