package schema

// MediaAsset is a named slot referencing an externally stored image. The
// seeder registers the slot (key, title, description) only; File stays nil
// until the asset is uploaded through the CMS admin interface and is
// populated at read time.
type MediaAsset struct {
	Key         string     `json:"key"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	File        *AssetFile `json:"file,omitempty"`
}

// AssetFile is the resolved underlying binary reference.
type AssetFile struct {
	URL             string                 `json:"url"`
	AlternativeText string                 `json:"alternativeText,omitempty"`
	Formats         map[string]AssetFormat `json:"formats,omitempty"`
}

// AssetFormat is a responsive variant of an asset file.
type AssetFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
