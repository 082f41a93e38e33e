package ngx

import "fmt"

// ResultCode is the status code returned by every engine entry point.
// The values match NVSDK_NGX_Result.
type ResultCode uint32

// Result codes.
const (
	Success ResultCode = 0x1
	Fail    ResultCode = 0xBAD00000

	FailFeatureNotSupported        = Fail | 1
	FailPlatformError              = Fail | 2
	FailFeatureAlreadyExists       = Fail | 3
	FailFeatureNotFound            = Fail | 4
	FailInvalidParameter           = Fail | 5
	FailScratchBufferTooSmall      = Fail | 6
	FailNotInitialized             = Fail | 7
	FailUnsupportedInputFormat     = Fail | 8
	FailRWFlagMissing              = Fail | 9
	FailMissingInput               = Fail | 10
	FailUnableToInitializeFeature  = Fail | 11
	FailOutOfDate                  = Fail | 12
	FailOutOfGPUMemory             = Fail | 13
	FailUnsupportedFormat          = Fail | 14
	FailUnableToWriteToAppDataPath = Fail | 15
	FailUnsupportedParameter       = Fail | 16
	FailDenied                     = Fail | 17
	FailNotImplemented             = Fail | 18
)

var resultNames = map[ResultCode]string{
	Success:                        "Success",
	Fail:                           "Fail",
	FailFeatureNotSupported:        "FeatureNotSupported",
	FailPlatformError:              "PlatformError",
	FailFeatureAlreadyExists:       "FeatureAlreadyExists",
	FailFeatureNotFound:            "FeatureNotFound",
	FailInvalidParameter:           "InvalidParameter",
	FailScratchBufferTooSmall:      "ScratchBufferTooSmall",
	FailNotInitialized:             "NotInitialized",
	FailUnsupportedInputFormat:     "UnsupportedInputFormat",
	FailRWFlagMissing:              "RWFlagMissing",
	FailMissingInput:               "MissingInput",
	FailUnableToInitializeFeature:  "UnableToInitializeFeature",
	FailOutOfDate:                  "OutOfDate",
	FailOutOfGPUMemory:             "OutOfGPUMemory",
	FailUnsupportedFormat:          "UnsupportedFormat",
	FailUnableToWriteToAppDataPath: "UnableToWriteToAppDataPath",
	FailUnsupportedParameter:       "UnsupportedParameter",
	FailDenied:                     "Denied",
	FailNotImplemented:             "NotImplemented",
}

// Succeeded reports whether the code denotes success.
func (c ResultCode) Succeeded() bool {
	return c&0xFFF00000 != Fail
}

// String returns the symbolic name of the code, or its hex value when the
// code is unknown.
func (c ResultCode) String() string {
	if name, ok := resultNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ResultCode(%#x)", uint32(c))
}
