package service

import "time"

const sessionIDLayout = "2006-01-02_15-04-05"

// Asia/Shanghai has no DST, so a fixed offset avoids depending on the host
// tzdata being present.
var sessionTZ = time.FixedZone("CST", 8*60*60)

// GenerateSessionID returns a timestamp-derived session identifier with second
// resolution. Ids sort lexicographically in chronological order; calls within
// the same second collide and silently overwrite on save.
func GenerateSessionID() string {
	return time.Now().In(sessionTZ).Format(sessionIDLayout)
}
