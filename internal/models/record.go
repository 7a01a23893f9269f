package models

import "strconv"

// UnknownScore is the sentinel stored when a CVE carries no CVSS v3 score.
const UnknownScore = "N/A"

// UnknownBucket sorts after every numeric severity bucket.
const UnknownBucket = 9

// Record is one normalized vulnerability entry.
type Record struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Published   string `json:"published"`
	Score       string `json:"score"`
}

// bucketBounds are inclusive upper bounds; the index is the bucket value.
var bucketBounds = []float64{2, 3, 4, 5, 6, 7, 8, 9, 10}

// ScoreBucket discretizes the CVSS score into the range used for sort
// ordering. Unparseable or out-of-range scores land in UnknownBucket.
func (r Record) ScoreBucket() int {
	score, err := strconv.ParseFloat(r.Score, 64)
	if err != nil {
		return UnknownBucket
	}
	for bucket, max := range bucketBounds {
		if score <= max {
			return bucket
		}
	}
	return UnknownBucket
}

// Year returns the 4-character year prefix of the published date.
func (r Record) Year() string {
	if len(r.Published) < 4 {
		return r.Published
	}
	return r.Published[:4]
}
