package countdown

// Notifier receives edge-triggered unit change signals.
// Callers read the new values from Engine.Snapshot.
type Notifier interface {
	OnDayChange()
	OnHourChange()
	OnMinuteChange()
	OnSecondChange()
}

// Callbacks adapts optional funcs to Notifier. Nil fields are skipped.
type Callbacks struct {
	OnDay    func()
	OnHour   func()
	OnMinute func()
	OnSecond func()
}

var _ Notifier = Callbacks{}

// OnDayChange calls OnDay.
func (callbacks Callbacks) OnDayChange() {
	if callbacks.OnDay != nil {
		callbacks.OnDay()
	}
}

// OnHourChange calls OnHour.
func (callbacks Callbacks) OnHourChange() {
	if callbacks.OnHour != nil {
		callbacks.OnHour()
	}
}

// OnMinuteChange calls OnMinute.
func (callbacks Callbacks) OnMinuteChange() {
	if callbacks.OnMinute != nil {
		callbacks.OnMinute()
	}
}

// OnSecondChange calls OnSecond.
func (callbacks Callbacks) OnSecondChange() {
	if callbacks.OnSecond != nil {
		callbacks.OnSecond()
	}
}

// notify dispatches changes in cascade order.
func notify(notifier Notifier, changes Changes) {
	if notifier == nil {
		return
	}
	if changes.Has(ChangeSecond) {
		notifier.OnSecondChange()
	}
	if changes.Has(ChangeMinute) {
		notifier.OnMinuteChange()
	}
	if changes.Has(ChangeHour) {
		notifier.OnHourChange()
	}
	if changes.Has(ChangeDay) {
		notifier.OnDayChange()
	}
}
