package i18n

type Messages struct {
	Welcome        string
	SetupIntro     string
	SetupDone      string
	ConfigUpdated  string
	Reconfigure    string
	Cancelled      string
	Goodbye        string
	UnknownCommand string

	MenuTitle   string
	MenuMint    string
	MenuAccount string
	MenuConfig  string
	MenuExit    string

	AskMnemonic       string
	AskFilebaseKey    string
	AskFilebaseSecret string
	AskBucket         string
	AskChain          string

	AccountFetching string
	AccountFailed   string
	AccountTitle    string
	AccountAddress  string
	AccountEVM      string
	AccountChain    string
	BalanceTitle    string
	BalanceFree     string
	BalanceReserved string
	BalanceFrozen   string
	BalanceTotal    string
	AccountEmpty    string

	CollectionSetup       string
	AskCollectionName     string
	AskCollectionDesc     string
	AskCollectionImage    string
	MintingSetup          string
	AskItemBase           string
	AskNumbered           string
	AskItemDesc           string
	AskImagesFolder       string
	AskStartNumber        string
	FoundImages           string
	ProceedMint           string
	MintCancelled         string
	MintStarted           string
	MintFailed            string
	MintSummaryTitle      string
	MintSummaryMinted     string
	MintSummaryFailed     string
	MintSummaryPending    string
	MintSummaryCollection string
	MintSummaryTotal      string
	MintSummaryExplorer   string
	MintSummaryExtrinsic  string
	MintSummaryElapsed    string
	MintSummaryReceipts   string

	StageCollectionImage    string
	StageCollectionMetadata string
	StageCollectionCreated  string
	StageItemImage          string
	StageItemMetadata       string
	StageItemFailed         string
	StageBatch              string

	ErrRequired       string
	ErrFileMissing    string
	ErrNotAFile       string
	ErrNotAFolder     string
	ErrNoImages       string
	ErrNotImage       string
	ErrPositiveNumber string
	ErrStartTooLarge  string
	ErrTooShort       string
	ErrMnemonicWords  string
	ErrMnemonicWord   string
	ErrBucketName     string
	ErrChoice         string
}

func Get(lang string) Messages {
	switch lang {
	case "ru":
		return Messages{
			Welcome:        "Dot NFT CLI: коллекции NFT в Asset Hub (только тестовые сети Paseo и Westend).\nТестовые токены: https://faucet.polkadot.io/ (раз в 24 часа)",
			SetupIntro:     "Требуется первичная настройка. Подготовь мнемонику (12 или 24 слова) и ключи Filebase (key, secret, bucket).",
			SetupDone:      "Настройка завершена, конфиг сохранён в %s\n",
			ConfigUpdated:  "Конфиг обновлён, сохранён в %s\n",
			Reconfigure:    "Конфиг уже есть. Перенастроить?",
			Cancelled:      "Отменено.",
			Goodbye:        "До встречи!",
			UnknownCommand: "Неизвестная команда:",

			MenuTitle:   "Что делаем?",
			MenuMint:    "1) Создать коллекцию и выпустить NFT",
			MenuAccount: "2) Информация об аккаунте",
			MenuConfig:  "3) Перенастроить",
			MenuExit:    "0) Выход",

			AskMnemonic:       "Мнемоника Polkadot",
			AskFilebaseKey:    "Filebase S3 access key",
			AskFilebaseSecret: "Filebase S3 secret key",
			AskBucket:         "Имя бакета Filebase",
			AskChain:          "Сеть",

			AccountFetching: "Загрузка данных аккаунта...",
			AccountFailed:   "Не удалось получить данные аккаунта: %v\n",
			AccountTitle:    "Аккаунт",
			AccountAddress:  "Адрес:",
			AccountEVM:      "EVM адрес:",
			AccountChain:    "Сеть:",
			BalanceTitle:    "Баланс:",
			BalanceFree:     "Свободно:",
			BalanceReserved: "Зарезервировано:",
			BalanceFrozen:   "Заморожено:",
			BalanceTotal:    "Всего:",
			AccountEmpty:    "(аккаунт ещё не существует в сети)",

			CollectionSetup:       "Создаём коллекцию",
			AskCollectionName:     "Название коллекции",
			AskCollectionDesc:     "Описание коллекции",
			AskCollectionImage:    "Путь к изображению коллекции",
			MintingSetup:          "Настраиваем выпуск NFT",
			AskItemBase:           "Базовое имя NFT",
			AskNumbered:           "Добавлять номер к имени (\"<имя> #<номер>\")?",
			AskItemDesc:           "Описание для всех NFT",
			AskImagesFolder:       "Папка с изображениями",
			AskStartNumber:        "Начальный номер",
			FoundImages:           "Найдено изображений: %d\n",
			ProceedMint:           "Выпустить %d NFT?",
			MintCancelled:         "Выпуск отменён",
			MintStarted:           "Выпуск запущен, лог: %s\n",
			MintFailed:            "Выпуск не удался: %v\n",
			MintSummaryTitle:      "Итоги выпуска",
			MintSummaryMinted:     "Выпущено:",
			MintSummaryFailed:     "Ошибок:",
			MintSummaryPending:    "Без подтверждения (проверь транзакцию):",
			MintSummaryCollection: "Коллекция:",
			MintSummaryTotal:      "Всего NFT:",
			MintSummaryExplorer:   "Обозреватель:",
			MintSummaryExtrinsic:  "Транзакция:",
			MintSummaryElapsed:    "Время:",
			MintSummaryReceipts:   "Отчёт:",

			StageCollectionImage:    "Изображение коллекции загружено",
			StageCollectionMetadata: "Метаданные коллекции загружены",
			StageCollectionCreated:  "Коллекция создана",
			StageItemImage:          "Изображение загружено: %s\n",
			StageItemMetadata:       "Метаданные загружены: %s\n",
			StageItemFailed:         "Пропуск %s: %v\n",
			StageBatch:              "Пакет mint + set_metadata включён в блок",

			ErrRequired:       "значение обязательно",
			ErrFileMissing:    "файл не существует",
			ErrNotAFile:       "путь должен указывать на файл",
			ErrNotAFolder:     "путь должен указывать на папку",
			ErrNoImages:       "в папке нет изображений",
			ErrNotImage:       "это не изображение",
			ErrPositiveNumber: "нужно положительное число",
			ErrStartTooLarge:  "для %d изображений номер не больше %d",
			ErrTooShort:       "минимум %d символов",
			ErrMnemonicWords:  "нужно ровно 12 или 24 слова",
			ErrMnemonicWord:   "неизвестное слово или неверная контрольная сумма",
			ErrBucketName:     "имя бакета: только строчные латинские буквы, цифры, точки и дефисы",
			ErrChoice:         "выбери один из вариантов",
		}
	default: // "en"
		return Messages{
			Welcome:        "Dot NFT CLI: NFT collections on Asset Hub (testnets only: Paseo and Westend).\nTestnet tokens: https://faucet.polkadot.io/ (once every 24 hours)",
			SetupIntro:     "First-time setup required. Have your mnemonic (12 or 24 words) and Filebase credentials (key, secret, bucket) ready.",
			SetupDone:      "Setup complete, configuration saved to %s\n",
			ConfigUpdated:  "Configuration updated, saved to %s\n",
			Reconfigure:    "Configuration exists. Would you like to reconfigure?",
			Cancelled:      "Cancelled.",
			Goodbye:        "Goodbye!",
			UnknownCommand: "Unknown command:",

			MenuTitle:   "What would you like to do?",
			MenuMint:    "1) Create NFT collection & mint NFTs",
			MenuAccount: "2) View account information",
			MenuConfig:  "3) Reconfigure settings",
			MenuExit:    "0) Exit",

			AskMnemonic:       "Polkadot mnemonic seed phrase",
			AskFilebaseKey:    "Filebase S3 access key",
			AskFilebaseSecret: "Filebase S3 secret key",
			AskBucket:         "Filebase S3 bucket name",
			AskChain:          "Network",

			AccountFetching: "Fetching account information...",
			AccountFailed:   "Failed to fetch account information: %v\n",
			AccountTitle:    "Account",
			AccountAddress:  "Address:",
			AccountEVM:      "EVM address:",
			AccountChain:    "Chain:",
			BalanceTitle:    "Balance:",
			BalanceFree:     "Free:",
			BalanceReserved: "Reserved:",
			BalanceFrozen:   "Frozen:",
			BalanceTotal:    "Total:",
			AccountEmpty:    "(account does not exist on chain yet)",

			CollectionSetup:       "Collection setup",
			AskCollectionName:     "Collection name",
			AskCollectionDesc:     "Collection description",
			AskCollectionImage:    "Collection image path",
			MintingSetup:          "Minting setup",
			AskItemBase:           "Base name for NFTs",
			AskNumbered:           "Append the number to each name (\"<base> #<n>\")?",
			AskItemDesc:           "Description for all NFTs",
			AskImagesFolder:       "Folder containing NFT images",
			AskStartNumber:        "Starting number",
			FoundImages:           "Found %d images to mint\n",
			ProceedMint:           "Proceed with minting %d NFTs?",
			MintCancelled:         "Minting cancelled",
			MintStarted:           "Minting started, log: %s\n",
			MintFailed:            "Minting failed: %v\n",
			MintSummaryTitle:      "Minting summary",
			MintSummaryMinted:     "Minted:",
			MintSummaryFailed:     "Failed:",
			MintSummaryPending:    "Unconfirmed (check the extrinsic):",
			MintSummaryCollection: "Collection:",
			MintSummaryTotal:      "Total NFTs:",
			MintSummaryExplorer:   "Explorer:",
			MintSummaryExtrinsic:  "Extrinsic:",
			MintSummaryElapsed:    "Elapsed:",
			MintSummaryReceipts:   "Receipts:",

			StageCollectionImage:    "Collection image uploaded",
			StageCollectionMetadata: "Collection metadata uploaded",
			StageCollectionCreated:  "Collection created",
			StageItemImage:          "Image uploaded: %s\n",
			StageItemMetadata:       "Metadata uploaded: %s\n",
			StageItemFailed:         "Skipping %s: %v\n",
			StageBatch:              "Batch of mint + set_metadata is in a block",

			ErrRequired:       "a value is required",
			ErrFileMissing:    "file does not exist",
			ErrNotAFile:       "path must be a file",
			ErrNotAFolder:     "path must be a directory",
			ErrNoImages:       "folder contains no valid image files",
			ErrNotImage:       "not an image file",
			ErrPositiveNumber: "must be a positive number",
			ErrStartTooLarge:  "with %d images the starting number can be at most %d",
			ErrTooShort:       "must be at least %d characters",
			ErrMnemonicWords:  "must be either 12 or 24 words",
			ErrMnemonicWord:   "unknown word or bad checksum",
			ErrBucketName:     "bucket name must contain only lowercase letters, numbers, dots, and hyphens",
			ErrChoice:         "pick one of the listed options",
		}
	}
}
