package dto

import (
	"testing"

	m "codercamp_backend/internals/features/curriculum/blocks/model"

	"github.com/google/uuid"
)

func TestFromBlockModelCarriesPropagationFlag(t *testing.T) {
	bm := m.BlockModel{
		BlockID:               uuid.New(),
		BlockLevelID:          uuid.New(),
		BlockName:             "Dasar Pemrograman",
		BlockOrderIndex:       2,
		BlockIsPublished:      true,
		BlockNeedsPropagation: true,
	}

	resp := FromBlockModel(bm)
	if !resp.BlockNeedsPropagation {
		t.Error("block_needs_propagation harus ikut di response, admin butuh sinyal kelas basi")
	}

	bm.BlockNeedsPropagation = false
	if FromBlockModel(bm).BlockNeedsPropagation {
		t.Error("flag bersih tidak boleh terbaca dirty")
	}
}
