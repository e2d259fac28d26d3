package domain

import "fmt"

// ChangeRecord captures one completed retarget: the tag and the commits it
// pointed at before and after. A record is only created once the gateway has
// acknowledged both the tag creation and the push.
type ChangeRecord struct {
	TagName   string
	OldCommit string
	NewCommit string
}

// String renders the record in the short summary form.
func (c ChangeRecord) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.TagName, ShortHash(c.OldCommit), ShortHash(c.NewCommit))
}

// ChangeSet is the ordered list of retargets completed during one run.
type ChangeSet []ChangeRecord

// Empty reports whether no retarget completed.
func (cs ChangeSet) Empty() bool {
	return len(cs) == 0
}
