package constants

// NSQ topics and channels
const (
	TopicRideDispatch = "ride_dispatch"
	ChannelDispatch   = "dispatch"
)
