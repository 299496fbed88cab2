package domain

// FolderStat is the recursive size and file count credited to one folder.
type FolderStat struct {
	Size  uint64
	Files uint64
}

// Merge adds two stats. It is commutative and associative, so fragments
// produced by different workers can be combined in any order.
func (stat FolderStat) Merge(other FolderStat) FolderStat {
	return FolderStat{
		Size:  stat.Size + other.Size,
		Files: stat.Files + other.Files,
	}
}

// AggregateMap maps a root-relative folder key to its stats. The scan root
// itself is stored under the empty key.
type AggregateMap map[string]FolderStat

func (aggregate AggregateMap) Add(key string, stat FolderStat) {
	aggregate[key] = aggregate[key].Merge(stat)
}

func (aggregate AggregateMap) MergeFrom(other AggregateMap) {
	for key, stat := range other {
		aggregate.Add(key, stat)
	}
}

func (aggregate AggregateMap) Clone() AggregateMap {
	clone := make(AggregateMap, len(aggregate))
	for key, stat := range aggregate {
		clone[key] = stat
	}
	return clone
}

// Percent returns part as a percentage of total, or 0 while total is still 0.
func Percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
