package slyr

// Class ids of the decoded object types
const (
	GuidRgbColor  = "7ee9c496-d123-11d0-8383-080009b996cc"
	GuidCmykColor = "7ee9c497-d123-11d0-8383-080009b996cc"
	GuidHsvColor  = "7ee9c492-d123-11d0-8383-080009b996cc"
	GuidHlsColor  = "7ee9c493-d123-11d0-8383-080009b996cc"
	GuidGrayColor = "7ee9c495-d123-11d0-8383-080009b996cc"

	GuidLineSymbol   = "7914e5fa-c892-11d0-8bb6-080009ee4e41"
	GuidFillSymbol   = "7914e604-c892-11d0-8bb6-080009ee4e41"
	GuidMarkerSymbol = "7914e5ff-c892-11d0-8bb6-080009ee4e41"

	GuidSimpleLineSymbol       = "7914e5f9-c892-11d0-8bb6-080009ee4e41"
	GuidCartographicLineSymbol = "7914e5fb-c892-11d0-8bb6-080009ee4e41"
	GuidMarkerLineSymbol       = "7914e5fd-c892-11d0-8bb6-080009ee4e41"
	GuidHashLineSymbol         = "7914e5fc-c892-11d0-8bb6-080009ee4e41"
	GuidPictureLineSymbol      = "22c8c5a1-84fc-11d4-834d-0080c79f0371"

	GuidSimpleFillSymbol   = "7914e603-c892-11d0-8bb6-080009ee4e41"
	GuidColorSymbol        = "b81f9ae0-026e-11d3-9c1f-00c04f5aa6ed"
	GuidGradientFillSymbol = "7914e609-c892-11d0-8bb6-080009ee4e41"
	GuidLineFillSymbol     = "7914e606-c892-11d0-8bb6-080009ee4e41"
	GuidMarkerFillSymbol   = "7914e608-c892-11d0-8bb6-080009ee4e41"
	GuidPictureFillSymbol  = "d842b082-330c-11d2-9168-0000f87808ee"

	GuidSimpleMarkerSymbol    = "7914e5fe-c892-11d0-8bb6-080009ee4e41"
	GuidCharacterMarkerSymbol = "7914e600-c892-11d0-8bb6-080009ee4e41"
	GuidArrowMarkerSymbol     = "88539431-e06e-11d1-b277-0000f878229e"
	GuidPictureMarkerSymbol   = "7914e602-c892-11d0-8bb6-080009ee4e41"

	GuidLineTemplate                = "41093a71-cce1-11d0-bfaa-0080c7e24280"
	GuidLineDecoration              = "533d88f5-0a1a-11d2-b27f-0000f878229e"
	GuidSimpleLineDecorationElement = "533d88f3-0a1a-11d2-b27f-0000f878229e"
	GuidFont                        = "0be35203-8f91-11ce-9de3-00aa004bb851"
	GuidStdPicture                  = "0be35204-8f91-11ce-9de3-00aa004bb851"

	GuidRandomColorRamp      = "beb87094-c0b4-11d0-8379-080009b996cc"
	GuidPresetColorRamp      = "beb8709a-c0b4-11d0-8379-080009b996cc"
	GuidMultiPartColorRamp   = "beb87099-c0b4-11d0-8379-080009b996cc"
	GuidAlgorithmicColorRamp = "beb8709b-c0b4-11d0-8379-080009b996cc"

	GuidTextSymbol = "b65a3e74-2993-11d1-9a43-0080c7ec5c96"
)

var defaultFactories = map[string]Factory{
	GuidRgbColor:  func() Object { return &RgbColor{} },
	GuidCmykColor: func() Object { return &CmykColor{} },
	GuidHsvColor:  func() Object { return &HsvColor{} },
	GuidHlsColor:  func() Object { return &HlsColor{} },
	GuidGrayColor: func() Object { return &GrayColor{} },

	GuidLineSymbol:   func() Object { return &LineSymbol{} },
	GuidFillSymbol:   func() Object { return &FillSymbol{} },
	GuidMarkerSymbol: func() Object { return &MarkerSymbol{} },

	GuidSimpleLineSymbol:       func() Object { return &SimpleLineSymbol{} },
	GuidCartographicLineSymbol: func() Object { return &CartographicLineSymbol{} },
	GuidMarkerLineSymbol:       func() Object { return &MarkerLineSymbol{} },
	GuidHashLineSymbol:         func() Object { return &HashLineSymbol{} },
	GuidPictureLineSymbol:      func() Object { return &PictureLineSymbol{} },

	GuidSimpleFillSymbol:   func() Object { return &SimpleFillSymbol{} },
	GuidColorSymbol:        func() Object { return &ColorSymbol{} },
	GuidGradientFillSymbol: func() Object { return &GradientFillSymbol{} },
	GuidLineFillSymbol:     func() Object { return &LineFillSymbol{} },
	GuidMarkerFillSymbol:   func() Object { return &MarkerFillSymbol{} },
	GuidPictureFillSymbol:  func() Object { return &PictureFillSymbol{} },

	GuidSimpleMarkerSymbol:    func() Object { return &SimpleMarkerSymbol{} },
	GuidCharacterMarkerSymbol: func() Object { return &CharacterMarkerSymbol{} },
	GuidArrowMarkerSymbol:     func() Object { return &ArrowMarkerSymbol{} },
	GuidPictureMarkerSymbol:   func() Object { return &PictureMarkerSymbol{} },

	GuidLineTemplate:                func() Object { return &LineTemplate{} },
	GuidLineDecoration:              func() Object { return &LineDecoration{} },
	GuidSimpleLineDecorationElement: func() Object { return &SimpleLineDecorationElement{} },
	GuidFont:                        func() Object { return &Font{} },
	GuidStdPicture:                  func() Object { return &StdPicture{} },

	GuidRandomColorRamp:      func() Object { return &RandomColorRamp{} },
	GuidPresetColorRamp:      func() Object { return &PresetColorRamp{} },
	GuidMultiPartColorRamp:   func() Object { return &MultiPartColorRamp{} },
	GuidAlgorithmicColorRamp: func() Object { return &AlgorithmicColorRamp{} },

	GuidTextSymbol: func() Object { return &TextSymbol{} },
}

// known object types which are recognised but not decoded
var defaultNotImplemented = map[string]string{
	"9a1eba10-cdf9-11d3-81eb-0080c79f0371": "DotDensityFillSymbol",
	"5031736a-bd70-11d3-9f79-00c04f6bc709": "BarChartSymbol",
	"6e8ec8f7-e90a-11d5-a129-00508bd60cb9": "CharacterMarker3DSymbol",
	"773f7274-aefb-11d5-8112-00c04fa0adf8": "Marker3DSymbol",
	"470b7275-3552-11d6-a12d-00508bd60cb9": "SimpleLine3DSymbol",
	"773f7270-aefb-11d5-8112-00c04fa0adf8": "SimpleMarker3DSymbol",
	"8d738780-c069-42e0-9dfa-2b7b61707ba9": "TextureFillSymbol",
	"b5710c9c-a9bc-4a16-b578-54be176ed57b": "TextureLineSymbol",
	"40987040-204c-11d3-a3f2-0004ac1b1d86": "ColorRampSymbol",
	"50317368-bd70-11d3-9f79-00c04f6bc709": "PieChartSymbol",
	"99dccb66-2e09-11d3-a626-0008c7bf3347": "RasterRGBSymbol",
	"50317369-bd70-11d3-9f79-00c04f6bc709": "StackedChartSymbol",
	"2b74125d-5c1b-4dbd-967a-7412dfff1f09": "TextMarkerSymbol",
	"c8d09ed2-4fbb-11d1-9a72-0080c7ec5c96": "BalloonCallout",
	"c8d09ed3-4fbb-11d1-9a72-0080c7ec5c96": "LineCallout",
	"fa37b822-a959-4acd-834a-0e114bf420b8": "SimpleLineCallout",
	"1baa33e9-e13b-11d2-b868-00600802e603": "SymbolBackground",
	"c5c02d50-7282-11d2-9816-0080c7e04196": "MarkerTextBackground",
}

var defaultRegistry *Registry

func init() {
	defaultRegistry = NewDefaultRegistry()
}

// DefaultRegistry returns the registry of every supported object type
//
// the returned registry is shared and must not be modified, use NewDefaultRegistry
// to obtain one which can be extended
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewDefaultRegistry returns a new registry populated with the supported object types
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for guid, factory := range defaultFactories {
		r.Register(MustParseGuid(guid), factory)
	}
	for guid, name := range defaultNotImplemented {
		r.RegisterNotImplemented(MustParseGuid(guid), name)
	}
	return r
}
