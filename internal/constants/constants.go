package constants

import "time"

// rendering defaults for channels that are unset or disabled
const DefaultHue = 0
const DefaultSaturation = 100
const DefaultLevel = 50

// device-native hue range used by the strip firmware
const DeviceHueMax = 255

const DefaultPreviewLedCount = 101
const DefaultSpectrumWidth = 256
const DefaultSpectrumHeight = 100

const DefaultZoom = 1
const DefaultSpeed = 0

// how long a stuck in-flight POST flag is kept before being force reset
const InFlightResetDelay = 5 * time.Second

// delay between requests when fanning out to several strips
const ThrottleInterval = 100 * time.Millisecond

const AnimateInterval = 100 * time.Millisecond

// pin status value meaning the pin has no strip attached
const PinStatusOff = "off"

// command kinds
const CommandKindHue = "h"
const CommandKindSaturation = "s"
const CommandKindLevel = "l"

// event stream names
const StreamPreview = "preview"
const StreamScene = "scene"
