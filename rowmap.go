package rowmap

import (
	"github.com/shrek82/rowmap/codec"
	"github.com/shrek82/rowmap/hydrate"
	"github.com/shrek82/rowmap/logger"
	"github.com/shrek82/rowmap/mapping"
)

// Re-export mapping types and functions
type Schema = mapping.Schema
type Property = mapping.Property
type Signal = mapping.Signal
type Config = mapping.Config
type AccessStrategy = mapping.AccessStrategy
type AnnotationSet = mapping.AnnotationSet

const (
	AccessBoth              = mapping.AccessBoth
	AccessFields            = mapping.AccessFields
	AccessGettersAndSetters = mapping.AccessGettersAndSetters
)

var (
	GetSchema       = mapping.GetSchema
	ResolveProperty = mapping.ResolveProperty
	DefaultConfig   = mapping.DefaultConfig
	ParseTag        = mapping.ParseTag
	Quote           = mapping.Quote
)

// Re-export codec types and functions
type Codec = codec.Codec
type CodecRegistry = codec.Registry

var (
	RegisterCodec = codec.Register
	DefaultCodecs = codec.Default
	NewRegistry   = codec.NewRegistry
)

// Re-export hydration helpers
var (
	ScanRow = hydrate.ScanRow
	ScanAll = hydrate.ScanAll
	Columns = hydrate.Columns
	Values  = hydrate.Values
)

// Re-export logger types and functions
type Logger = logger.Logger

var NewStdLogger = logger.NewStdLogger
