package jitter

// Listener observes state-machine transitions and notable events without
// obliging callers to poll statistics, in the spirit of
// pion-interceptor's EventListener.
type Listener interface {
	OnOverflow(seq uint16, depthMs, maxDepthMs int64)
	OnOutOfOrder(seq uint16)
	OnBufferingStarted()
	OnPlayoutStarted()
	OnPacketLoss(expectedSeq uint16)
}

// NopListener implements Listener with no-ops; it is the default.
type NopListener struct{}

func (NopListener) OnOverflow(uint16, int64, int64) {}
func (NopListener) OnOutOfOrder(uint16)             {}
func (NopListener) OnBufferingStarted()             {}
func (NopListener) OnPlayoutStarted()               {}
func (NopListener) OnPacketLoss(uint16)             {}
