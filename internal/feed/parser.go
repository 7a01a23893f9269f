package feed

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cvetrack/internal/models"
)

// nvdFeed matches the NVD JSON 1.1 feed shape, narrowed to the fields we
// keep. CVEItems is a pointer so an absent list key can be told apart
// from an empty one.
type nvdFeed struct {
	CVEItems *[]nvdItem `json:"CVE_Items"`
}

type nvdItem struct {
	CVE struct {
		Meta struct {
			ID string `json:"ID"`
		} `json:"CVE_data_meta"`
		Description struct {
			Data []struct {
				Value string `json:"value"`
			} `json:"description_data"`
		} `json:"description"`
	} `json:"cve"`
	Impact struct {
		BaseMetricV3 *struct {
			CVSSV3 struct {
				BaseScore *float64 `json:"baseScore"`
			} `json:"cvssV3"`
		} `json:"baseMetricV3"`
	} `json:"impact"`
	PublishedDate string `json:"publishedDate"`
}

// Parse extracts records from a decompressed feed document. An empty
// CVE_Items list is valid; a missing list key or an entry without an id,
// description, or published date fails the whole batch with *ParseError.
func Parse(data []byte) ([]models.Record, error) {
	var doc nvdFeed
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	if doc.CVEItems == nil {
		return nil, &ParseError{Reason: "missing CVE_Items list"}
	}

	records := make([]models.Record, 0, len(*doc.CVEItems))
	for i, item := range *doc.CVEItems {
		if item.CVE.Meta.ID == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("entry %d: missing CVE id", i)}
		}
		if len(item.CVE.Description.Data) == 0 {
			return nil, &ParseError{Reason: fmt.Sprintf("entry %d (%s): missing description", i, item.CVE.Meta.ID)}
		}
		if item.PublishedDate == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("entry %d (%s): missing published date", i, item.CVE.Meta.ID)}
		}

		score := models.UnknownScore
		if m := item.Impact.BaseMetricV3; m != nil && m.CVSSV3.BaseScore != nil {
			score = strconv.FormatFloat(*m.CVSSV3.BaseScore, 'g', -1, 64)
		}

		records = append(records, models.Record{
			ID:          item.CVE.Meta.ID,
			Description: item.CVE.Description.Data[0].Value,
			Published:   item.PublishedDate,
			Score:       score,
		})
	}
	return records, nil
}
