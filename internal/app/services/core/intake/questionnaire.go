package intake

const (
	EmailFieldID = "email"

	optionLiftsWeight = "Levantar o mover peso habitualmente"
	optionDeskWork    = "Pasar sentado frente a un ordenador"
	optionSuddenOnset = "De forma repentina con un golpe o accidente"
)

// ConsentPepTalk is shown on the terminal consent step.
const ConsentPepTalk = "Último paso: consentimiento y firma. ¡Lo tienes! 💪"

func textField(id, label string) Field {
	return Field{ID: id, Label: label, Type: FieldText}
}

func textareaField(id, label string) Field {
	return Field{ID: id, Label: label, Type: FieldTextarea}
}

func yesNoField(id, label string) Field {
	return Field{ID: id, Label: label, Type: FieldYesNo, Options: []string{AnswerYes, AnswerNo}}
}

func selectField(id, label string, options ...string) Field {
	return Field{ID: id, Label: label, Type: FieldSelect, Options: options}
}

func multiField(id, label string, options ...string) Field {
	return Field{ID: id, Label: label, Type: FieldMulti, Options: options}
}

func numberField(id, label string, min, max *float64) Field {
	return Field{ID: id, Label: label, Type: FieldNumber, Min: min, Max: max}
}

func scaleField(id, label string) Field {
	return Field{ID: id, Label: label, Type: FieldScale, Min: float(0), Max: float(10), Step: float(1)}
}

func (f Field) required() Field {
	f.Required = true
	return f
}

func (f Field) when(condition Condition) Field {
	f.ShowIf = condition
	return f
}

func ifYes(fieldID string) Condition {
	return AnswerEquals(fieldID, AnswerYes)
}

// DefaultSections returns the clinic's anamnesis questionnaire. Each call
// builds a fresh copy.
func DefaultSections() []Section {
	return []Section{
		{
			ID:      "b1",
			Title:   "Datos personales y contacto",
			PepTalk: "¡Genial! Con esto ya podemos conocerte mejor.",
			Fields: []Field{
				textField("q1_nombre", "Nombre y apellidos").required(),
				{ID: "q2_nacimiento", Label: "Fecha de nacimiento", Type: FieldDate},
				selectField("q3_sexo", "Sexo", "Hombre", "Mujer", "Otro", "Prefiero no decirlo"),
				numberField("q4_altura", "Altura (cm)", float(80), float(250)),
				numberField("q5_peso", "Peso (kg)", float(20), float(300)),
				selectField("q6_dominancia", "Mano o pie dominante", "Diestro", "Zurdo", "Ambidiestro"),
				textareaField("q7_ocupacion", "Ocupación actual"),
				multiField("q8_trabajo", "Tu trabajo implica…",
					optionLiftsWeight,
					"Mantenerte de pie muchas horas",
					optionDeskWork,
					"Movimientos repetitivos",
					"Conducción prolongada",
					"Esfuerzo físico intenso",
					"Ninguna de las anteriores",
				),
				textField("q8a_peso_frecuencia", "¿Cuánto peso aproximado sueles levantar y cuántas veces al día?").
					when(AnswerContains("q8_trabajo", optionLiftsWeight)),
				yesNoField("q8b_ergonomia", "¿Usas ajustes ergonómicos (silla, reposapiés, pantalla ajustada)?").
					when(AnswerContains("q8_trabajo", optionDeskWork)),
				yesNoField("q9_deporte", "¿Practicas actividad física o deporte?"),
				textareaField("q9a_cuales", "¿Cuál/es?").when(ifYes("q9_deporte")),
				selectField("q9b_frecuencia", "¿Con qué frecuencia semanal?", "1-2 días", "3-4 días", "5 o más").when(ifYes("q9_deporte")),
				selectField("q9c_nivel", "¿Nivel?", "Recreativo", "Competitivo").when(ifYes("q9_deporte")),
				textareaField("q10_hobbies", "Hobbies o actividades de ocio"),
				yesNoField("q11_fumas", "¿Fumas?"),
				numberField("q11a_cigs", "¿Cuántos cigarrillos/día?", float(0), float(100)).when(ifYes("q11_fumas")),
				yesNoField("q12_alcohol", "¿Consumes alcohol habitualmente?"),
				scaleField("q13_sueno", "Calidad de tu sueño (0-10)"),
				selectField("q14_cambio_peso", "¿Has notado cambios de peso en los últimos 6 meses?", "Sí, he aumentado", "Sí, he bajado", "No"),
				textField("q14a_cuantos", "¿Cuántos kg y en cuánto tiempo?").when(AnswerEquals("q14_cambio_peso", "Sí, he bajado")),
				Field{ID: EmailFieldID, Label: "Email para envío del acuse", Type: FieldText, Placeholder: "tucorreo@dominio.com"}.required(),
			},
		},
		{
			ID:      "b2",
			Title:   "Motivo de consulta",
			PepTalk: "Perfecto, estamos entendiendo cómo empezó todo.",
			Fields: []Field{
				textareaField("q15_motivo", "¿Qué te trae hoy a consulta? Describe el problema principal.").required(),
				numberField("q16_desde_cuando_num", "¿Desde cuándo? (número)", float(0), nil),
				selectField("q16_desde_cuando_ud", "Unidad de tiempo", "días", "semanas", "meses", "años"),
				selectField("q17_como_empezo", "¿Cómo empezó?", optionSuddenOnset, "Poco a poco sin causa clara", "Después de un esfuerzo", "Otro"),
				textareaField("q17a_golpe", "Describe qué ocurrió y los síntomas inmediatos").when(AnswerEquals("q17_como_empezo", optionSuddenOnset)),
				textField("q18_donde", "¿Dónde notas el síntoma principal?"),
				selectField("q19_irradia", "¿El dolor se queda o se extiende?", "Se queda", "Se extiende"),
				textareaField("q19a_a_donde", "¿Hacia dónde se extiende?").when(AnswerEquals("q19_irradia", "Se extiende")),
				multiField("q20_tipo", "Describe el tipo de dolor o molestia", "Punzante", "Quemante", "Eléctrico", "Opresivo", "Sordo", "Pulsátil", "Otro"),
				scaleField("q21_intensidad", "Intensidad de dolor actual (0-10)"),
				selectField("q22_constante", "¿Es constante o intermitente?", "Constante", "Intermitente"),
				textField("q22a_frec", "¿Con qué frecuencia y duración aproximada?").when(AnswerEquals("q22_constante", "Intermitente")),
				textareaField("q23_empeora", "¿En qué momentos empeora?"),
				textareaField("q24_mejora", "¿En qué momentos mejora?"),
				yesNoField("q25_rigidez", "¿Notas rigidez al despertar?"),
				numberField("q25a_rigidez_min", "¿Cuánto dura hasta que mejora? (minutos)", float(0), nil).when(ifYes("q25_rigidez")),
				yesNoField("q26_dolor_noche", "¿El dolor te despierta por la noche?"),
				yesNoField("q26a_mejora_postura", "¿Mejora al cambiar de postura?").when(ifYes("q26_dolor_noche")),
			},
		},
		{
			ID:      "b3",
			Title:   "Antecedentes del problema",
			PepTalk: "Muy bien, esto nos ayuda a ver el historial del problema.",
			Fields: []Field{
				yesNoField("q27_recurrencia", "¿Has tenido este mismo problema antes?"),
				textField("q27a_cuantas", "¿Cuántas veces y en qué periodo?").when(ifYes("q27_recurrencia")),
				textareaField("q28_que_hiciste", "¿Qué has hecho hasta ahora para tratarlo?"),
				yesNoField("q29_pruebas", "¿Te han hecho pruebas médicas?"),
				textareaField("q29a_cuales", "¿Cuáles y resultados?").when(ifYes("q29_pruebas")),
				yesNoField("q30_meds", "¿Tomas medicación para este problema?"),
				textareaField("q30a_cuales", "¿Cuál/es y con qué frecuencia?").when(ifYes("q30_meds")),
			},
		},
		{
			ID:      "b4",
			Title:   "Síntomas asociados (seguridad)",
			PepTalk: "Gracias. Estas preguntas son importantes para tu seguridad.",
			Fields: []Field{
				yesNoField("q31_fiebre", "¿Has tenido fiebre, escalofríos o sudores nocturnos recientes?"),
				yesNoField("q32_peso", "¿Has perdido peso sin causa aparente en los últimos meses?"),
				yesNoField("q33_cancer", "¿Antecedentes de cáncer?"),
				yesNoField("q34_debilidad", "¿Debilidad en brazos o piernas?"),
				yesNoField("q35_hormigueo", "¿Hormigueos o pérdida de sensibilidad?"),
				textField("q35a_donde", "¿Dónde?").when(ifYes("q35_hormigueo")),
				yesNoField("q36_esfinteres", "¿Dificultad para controlar orina o heces?"),
				yesNoField("q37_silla", "¿Adormecimiento en zona genital o entre las piernas?"),
				yesNoField("q38_invariante", "¿Dolor que no cambia con postura o actividad?"),
				yesNoField("q39_pecho", "¿Dolor en el pecho, falta de aire o palpitaciones recientes?"),
			},
		},
		{
			ID:      "b5",
			Title:   "Limitaciones y vida diaria",
			PepTalk: "Listo, vemos cómo impacta en tu día a día.",
			Fields: []Field{
				textareaField("q40_limitaciones", "¿Qué actividades te cuesta o has dejado de hacer?"),
				yesNoField("q41_trabajo_afecta", "¿Te afecta para trabajar?"),
				textareaField("q41a_como", "Describe de qué forma").when(ifYes("q41_trabajo_afecta")),
				yesNoField("q42_deporte_dejado", "¿Has dejado algún deporte/hobby por este problema?"),
				textareaField("q42a_cuales", "¿Cuál/es?").when(ifYes("q42_deporte_dejado")),
				yesNoField("q43_ayudas", "¿Usas alguna ayuda (bastón, muletas, faja, rodillera)?"),
			},
		},
		{
			ID:      "b6",
			Title:   "Antecedentes médicos",
			PepTalk: "Anotado. Así cuidamos tu salud general.",
			Fields: []Field{
				textareaField("q44_enfermedades", "¿Tienes alguna enfermedad diagnosticada?"),
				textareaField("q45_cirugias", "¿Has tenido cirugías o lesiones importantes?"),
				textareaField("q46_familia", "¿Antecedentes familiares relevantes?"),
				yesNoField("q47_med_habitual", "¿Tomas medicación habitual?"),
				textareaField("q47a_cuales", "¿Cuál/es?").when(ifYes("q47_med_habitual")),
				textareaField("q48_alergias", "Alergias conocidas"),
			},
		},
		{
			ID:      "b7",
			Title:   "Motivación y expectativas",
			PepTalk: "Ya casi está. Nos ayuda a adaptar el plan a ti.",
			Fields: []Field{
				selectField("q49_emocion", "¿Cómo te sientes por este problema?", "tranquilo/a", "algo preocupado/a", "muy preocupado/a", "desesperado/a"),
				yesNoField("q50_kinesiophobia", "¿Temes moverte por miedo a empeorar?"),
				textareaField("q51_creencia", "En tu opinión, ¿qué está causando tu problema?"),
				textareaField("q52_esperas", "¿Qué esperas conseguir con la fisioterapia?"),
				scaleField("q53_compromiso", "Compromiso con recomendaciones y ejercicios (0-10)"),
				textareaField("q54_objetivo", "Si te recuperas, ¿qué te gustaría volver a hacer primero?"),
				textareaField("q55_por_que_ahora", "¿Por qué has decidido tratar este problema justo ahora?"),
				textareaField("q56_cambio_vida", "Si desapareciera por completo, ¿cómo cambiaría tu vida?"),
				scaleField("q57_urgencia", "¿Cuánta urgencia (0-10)?"),
				scaleField("q58_afectacion", "¿Cuánto afecta a tu calidad de vida (0-10)?"),
				textareaField("q59_si_no_haces", "¿Qué crees que pasaría si no hicieras nada?"),
				yesNoField("q60_otras_sol", "¿Has intentado otras soluciones antes?"),
				textareaField("q60a_cuales", "¿Cuáles y resultado?").when(ifYes("q60_otras_sol")),
				selectField("q61_dispuesto", "¿Qué tan dispuesto/a estás a invertir?",
					"Haría lo que sea necesario",
					"Estoy dispuesto/a a hacer cambios importantes",
					"Solo si es algo rápido y sin mucho esfuerzo",
					"No lo tengo claro",
				),
				multiField("q62_barreras", "¿Qué podría impedir seguir el programa?", "Falta de tiempo", "Falta de dinero", "Falta de constancia", "Miedo a no mejorar", "No me gusta hacer ejercicio", "Otra"),
				selectField("q63_depende", "Si encuentras un tratamiento que te da confianza, ¿lo empezarías de inmediato?", "Sí", "No", "Depende"),
				textareaField("q63a_de_que", "¿De qué dependería?").when(AnswerEquals("q63_depende", "Depende")),
			},
		},
	}
}
