package database

import (
	"github.com/heversonalves/canon/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultVerses are the passages shipped with the app so a fresh install
// has something to study before any translation is uploaded.
var defaultVerses = []model.BibleVerse{
	{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 21, Text: "Mas agora se manifestou, sem a lei, a justiça de Deus, tendo o testemunho da lei e dos profetas;"},
	{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 22, Text: "Isto é, a justiça de Deus pela fé em Jesus Cristo para todos e sobre todos os que creem; porque não há diferença."},
	{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 23, Text: "Porque todos pecaram e destituídos estão da glória de Deus;"},
	{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 24, Text: "Sendo justificados gratuitamente pela sua graça, pela redenção que há em Cristo Jesus;"},
	{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 25, Text: "Ao qual Deus propôs para propiciação pela fé no seu sangue, para demonstrar a sua justiça pela remissão dos pecados dantes cometidos, sob a paciência de Deus;"},
	{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 26, Text: "Para demonstração da sua justiça neste tempo presente, para que ele seja justo e justificador daquele que tem fé em Jesus."},
	{Translation: "ACF", Book: "Genesis", Chapter: 1, Verse: 1, Text: "No princípio criou Deus os céus e a terra."},
	{Translation: "ACF", Book: "Genesis", Chapter: 1, Verse: 2, Text: "E a terra era sem forma e vazia; e havia trevas sobre a face do abismo; e o Espírito de Deus se movia sobre a face das águas."},
	{Translation: "ACF", Book: "Genesis", Chapter: 1, Verse: 3, Text: "E disse Deus: Haja luz; e houve luz."},
}

// SeedDefaultVerses inserts the bundled ACF passages. Idempotent: skipped
// entirely when the translation already has rows.
func SeedDefaultVerses(db *gorm.DB) (int, error) {
	var total int64
	if err := db.Model(&model.BibleVerse{}).
		Where("translation = ?", "ACF").
		Count(&total).Error; err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&defaultVerses).Error; err != nil {
		return 0, err
	}
	return len(defaultVerses), nil
}
